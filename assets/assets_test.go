package assets_test

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/automoto/circleclash/assets"
	cfg "github.com/automoto/circleclash/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"
)

const smallArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="40" y="60"><point/></object>
 </objectgroup>
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="100" y="10" width="150" height="100"/>
 </objectgroup>
</map>`

const noSpawnArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="2" name="EnemySpawn">
  <object id="2" x="100" y="10" width="150" height="100"/>
 </objectgroup>
</map>`

const outsideArena = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="500" y="60"><point/></object>
 </objectgroup>
</map>`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/small.tmx":   {Data: []byte(smallArena)},
		"levels/nospawn.tmx": {Data: []byte(noSpawnArena)},
		"levels/outside.tmx": {Data: []byte(outsideArena)},
		"levels/broken.tmx":  {Data: []byte("<map")},
	}
}

func TestLoadArena(t *testing.T) {
	arena, err := assets.LoadArena(testFS(), "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, 320.0, arena.Width)
	assert.Equal(t, 160.0, arena.Height)
	assert.Equal(t, dmath.Vec2{X: 40, Y: 60}, arena.PlayerSpawn)
	assert.Equal(t, dmath.Vec2{X: 100, Y: 10}, arena.SpawnMin)
	assert.Equal(t, dmath.Vec2{X: 250, Y: 110}, arena.SpawnMax)
}

func TestLoadArenaErrors(t *testing.T) {
	_, err := assets.LoadArena(testFS(), "levels/nospawn.tmx")
	assert.ErrorIs(t, err, assets.ErrNoPlayerSpawn)

	_, err = assets.LoadArena(testFS(), "levels/outside.tmx")
	assert.ErrorIs(t, err, assets.ErrOutOfBounds)

	_, err = assets.LoadArena(testFS(), "levels/broken.tmx")
	assert.Error(t, err)

	_, err = assets.LoadArena(testFS(), "levels/missing.tmx")
	assert.Error(t, err)
}

func TestEmbeddedArenaMatchesDefaults(t *testing.T) {
	arena := assets.MustLoadArena(cfg.Arena.MapPath)

	assert.Equal(t, cfg.Arena.Width, arena.Width)
	assert.Equal(t, cfg.Arena.Height, arena.Height)
	assert.Equal(t, dmath.Vec2{X: cfg.Arena.PlayerSpawn[0], Y: cfg.Arena.PlayerSpawn[1]}, arena.PlayerSpawn)
	assert.Equal(t, dmath.Vec2{X: cfg.Arena.SpawnArea[2], Y: cfg.Arena.SpawnArea[3]}, arena.SpawnMax)
}

func TestLooksRequireDefault(t *testing.T) {
	_, err := assets.NewLooks(map[cfg.CharacterState]assets.Look{cfg.Hit: {}})
	assert.ErrorIs(t, err, assets.ErrNoDefaultLook)
}

func TestLooksFallBackToDefault(t *testing.T) {
	looks := assets.DefaultLooks()
	tint := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	assert.Equal(t, tint, looks.For(cfg.Default).Fill(tint))
	assert.Equal(t, tint, looks.For(cfg.Immovable).Fill(tint))
	assert.True(t, looks.For(cfg.Critical).Ring)
	assert.Equal(t, cfg.Colors.Killed, looks.For(cfg.Killed).Fill(tint))
}
