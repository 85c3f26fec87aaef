package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ilyamazurenko/Dance-partner-app/db"
	"github.com/ilyamazurenko/Dance-partner-app/internal/model"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/security"
	"github.com/ilyamazurenko/Dance-partner-app/pkg/util"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret-with-enough-bytes-to-sign"

type testEnv struct {
	db       *gorm.DB
	users    *UserService
	auth     *AuthService
	profiles *ProfileService
	styles   *StyleService
	matching *MatchingService
	tokens   *security.TokenService
	clock    *fakeClock
}

type fakeClock struct {
	t time.Time
}

// now returns the current fake time and moves it forward by a second
func (c *fakeClock) now() time.Time {
	t := c.t
	c.t = c.t.Add(time.Second)
	return t
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	conn, err := db.Open(sqlite.Open(db.SQLiteDSN("file:"+name+"?mode=memory&cache=shared")), logger.Discard)
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	passwords, err := security.NewPasswords(&security.ArgonHash{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	})
	require.NoError(t, err)

	tokens, err := security.NewTokenService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)

	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	users := NewUserService(conn, passwords)

	return &testEnv{
		db:       conn,
		users:    users,
		auth:     NewAuthService(users, passwords, tokens),
		profiles: NewProfileService(conn).WithClock(clock.now),
		styles:   NewStyleService(conn),
		matching: NewMatchingService(conn),
		tokens:   tokens,
		clock:    clock,
	}
}

func (e *testEnv) user(t *testing.T, email string) *model.User {
	t.Helper()

	u, err := e.users.Register(context.Background(), email, "pw-"+email)
	require.NoError(t, err)

	return u
}

func (e *testEnv) style(t *testing.T, name string) *model.DanceStyle {
	t.Helper()

	s, err := e.styles.Create(context.Background(), name, nil)
	require.NoError(t, err)

	return s
}

func (e *testEnv) profile(t *testing.T, userID uint, patch *ProfilePatch) *model.Profile {
	t.Helper()

	p, err := e.profiles.Create(context.Background(), userID, patch)
	require.NoError(t, err)

	return p
}

func withCity(city string, styleIDs ...uint) *ProfilePatch {
	p := &ProfilePatch{City: util.Some(city)}
	if styleIDs != nil {
		p.DanceStyleIDs = util.Some(styleIDs)
	}

	return p
}

func styleIDs(p *model.Profile) []uint {
	ids := make([]uint, 0, len(p.Styles))
	for _, s := range p.Styles {
		ids = append(ids, s.DanceStyleID)
	}

	return ids
}

func profileIDs(profiles []model.Profile) []uint {
	ids := make([]uint, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}

	return ids
}
