package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/halfgrim/roshambo/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete session flow from registration to game completion
func (s *IntegrationSuite) TestCompleteSessionFlow() {
	store := s.app.SessionStore

	// Step 1: Two players register
	alice, err := store.RegisterPlayer(s.ctx, "Alice")
	s.Require().NoError(err)
	bob, err := store.RegisterPlayer(s.ctx, "Bob")
	s.Require().NoError(err)
	s.Equal(s.app.MockClock.Now(), alice.CreatedAt)

	// Step 2: Alice opens a room, first to 2 points
	settings := model.DefaultGameSettings()
	settings.EndCondition.Target = 2
	room, err := store.CreateRoom(s.ctx, alice.ID, "lounge", &settings)
	s.Require().NoError(err)
	s.Equal(alice.ID, room.HostID())

	// Step 3: Bob joins, filling the room
	joined, err := store.JoinRoom(s.ctx, bob.ID, room.ID)
	s.Require().NoError(err)
	s.True(joined.IsFull())

	// Step 4: Alice launches
	game, err := store.LaunchRoom(s.ctx, alice.ID, room.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusRunning, game.Status)

	// Step 5: Alice wins two rounds back to back
	for i := 0; i < 2; i++ {
		_, err = store.PlayRound(s.ctx, alice.ID, game.ID, model.ActionPaper)
		s.Require().NoError(err)
		game, err = store.PlayRound(s.ctx, bob.ID, game.ID, model.ActionRock)
		s.Require().NoError(err)
	}

	s.Equal(model.GameStatusEnded, game.Status)
	s.Equal(2, game.Players[0].Score)
	s.Equal(0, game.Players[1].Score)
	s.Len(game.RoundHistory, 2)

	// Step 6: ended game stays queryable; further play is rejected
	fetched, err := store.GetGame(s.ctx, bob.ID, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GameStatusEnded, fetched.Status)

	_, err = store.PlayRound(s.ctx, bob.ID, game.ID, model.ActionRock)
	s.ErrorIs(err, model.ErrGameEnded)
}

// Test: room churn before launch, then a first round decided by
// scissors beating paper
func (s *IntegrationSuite) TestHostSuccessionThenLaunch() {
	store := s.app.SessionStore

	alice, err := store.RegisterPlayer(s.ctx, "Alice")
	s.Require().NoError(err)
	bob, err := store.RegisterPlayer(s.ctx, "Bob")
	s.Require().NoError(err)
	charlie, err := store.RegisterPlayer(s.ctx, "Charlie")
	s.Require().NoError(err)

	settings := model.DefaultGameSettings()
	settings.EndCondition.Target = 2
	room, err := store.CreateRoom(s.ctx, alice.ID, "duel", &settings)
	s.Require().NoError(err)

	// Bob fills the room; Charlie bounces off
	_, err = store.JoinRoom(s.ctx, bob.ID, room.ID)
	s.Require().NoError(err)
	_, err = store.JoinRoom(s.ctx, charlie.ID, room.ID)
	s.ErrorIs(err, model.ErrRoomFull)

	// Alice leaves, freeing a slot and making Bob host
	s.Require().NoError(store.LeaveRoom(s.ctx, alice.ID, room.ID))
	joined, err := store.JoinRoom(s.ctx, charlie.ID, room.ID)
	s.Require().NoError(err)
	s.Equal(bob.ID, joined.HostID())

	game, err := store.LaunchRoom(s.ctx, bob.ID, room.ID)
	s.Require().NoError(err)
	s.Equal("Bob", game.Players[0].Player.Name)
	s.Equal("Charlie", game.Players[1].Player.Name)

	// Scissors beats paper, so Charlie takes the round
	_, err = store.PlayRound(s.ctx, bob.ID, game.ID, model.ActionPaper)
	s.Require().NoError(err)
	game, err = store.PlayRound(s.ctx, charlie.ID, game.ID, model.ActionScissors)
	s.Require().NoError(err)

	s.Require().Len(game.RoundHistory, 1)
	result := game.RoundHistory[0].Result
	s.Require().Len(result, 1)
	s.Require().NotNil(result[0].Winner)
	s.Equal(charlie.ID, *result[0].Winner)
	s.Equal(1, game.Players[1].Score)
	s.Equal(model.GameStatusRunning, game.Status)
}

func (s *IntegrationSuite) TestRoomLifecycleAcrossPlayers() {
	store := s.app.SessionStore

	alice, err := store.RegisterPlayer(s.ctx, "Alice")
	s.Require().NoError(err)
	bob, err := store.RegisterPlayer(s.ctx, "Bob")
	s.Require().NoError(err)

	settings := model.DefaultGameSettings()
	settings.PlayerCount = 3
	room, err := store.CreateRoom(s.ctx, alice.ID, "trio", &settings)
	s.Require().NoError(err)

	_, err = store.JoinRoom(s.ctx, bob.ID, room.ID)
	s.Require().NoError(err)

	// Host leaves; Bob inherits the room
	s.Require().NoError(store.LeaveRoom(s.ctx, alice.ID, room.ID))

	updated, err := store.GetRoom(s.ctx, bob.ID, room.ID)
	s.Require().NoError(err)
	s.Equal(bob.ID, updated.HostID())

	// Alice can rejoin her old room as a regular member
	rejoined, err := store.JoinRoom(s.ctx, alice.ID, room.ID)
	s.Require().NoError(err)
	s.Equal("Alice", rejoined.Players[1].Name)
}
