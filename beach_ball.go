package immut

import "go.uber.org/atomic"

// noPlayer is the state of a BeachBall after it has been caught.
const noPlayer = -1

// BeachBall is a token thrown between two players, 0 and 1, to coordinate
// access to some memory shared by two goroutines. Only the player holding the
// ball may touch the memory. The ball itself guards nothing: it only orders
// the accesses.
//
// A player polls Catch until it succeeds, works on the memory, and then
// Throws the ball to the other player. Throw is a release store and a
// successful Catch an acquire, so everything written before a Throw is visible
// after the matching Catch.
type BeachBall struct {
	thrownTo atomic.Int32
}

// NewBeachBall returns a ball thrown to first, which must be 0 or 1.
func NewBeachBall(first int) *BeachBall {
	checkPlayer(first)
	b := new(BeachBall)
	b.thrownTo.Store(int32(first))
	return b
}

// Throw passes the ball from player to the other player. It must only be
// called by a player that caught the ball since its last Throw; BeachBallPlayer
// checks that.
func (b *BeachBall) Throw(player int) {
	checkPlayer(player)
	b.thrownTo.Store(int32(1 - player))
}

// Catch returns true if the ball had been thrown to player, who now holds it.
// False means the ball is not there yet, and the caller should poll again.
func (b *BeachBall) Catch(player int) bool {
	checkPlayer(player)
	return b.thrownTo.CompareAndSwap(int32(player), noPlayer)
}

func checkPlayer(player int) {
	if player != 0 && player != 1 {
		panic(Error.New("invalid player %d", player))
	}
}

// BeachBallPlayer is one of the two fixed roles playing with a BeachBall. It
// remembers whether it holds the ball, so misuse is always caught. It must
// only be used by one goroutine.
type BeachBallPlayer struct {
	ball   *BeachBall
	player int
	have   bool
}

// NewBeachBallPlayer returns the given player, 0 or 1, of ball. The player
// starts without the ball, even if it was thrown to them first: they must
// Catch or Ensure before touching the shared memory.
func NewBeachBallPlayer(ball *BeachBall, player int) *BeachBallPlayer {
	checkPlayer(player)
	return &BeachBallPlayer{ball: ball, player: player}
}

// Player returns the role of the player.
func (p *BeachBallPlayer) Player() int { return p.player }

// Have reports if the player holds the ball.
func (p *BeachBallPlayer) Have() bool { return p.have }

// Throw passes the ball to the other player. It panics if the player does not
// hold the ball.
func (p *BeachBallPlayer) Throw() {
	if !p.have {
		panic(Error.New("player %d threw without the ball", p.player))
	}
	p.have = false
	p.ball.Throw(p.player)
}

// Catch tries to catch the ball and reports if the player now holds it. It
// panics if the player already holds the ball.
func (p *BeachBallPlayer) Catch() bool {
	if p.have {
		panic(Error.New("player %d caught while holding the ball", p.player))
	}
	p.have = p.ball.Catch(p.player)
	return p.have
}

// Ensure reports if the player holds the ball, trying to catch it first if
// they do not.
func (p *BeachBallPlayer) Ensure() bool {
	if p.have {
		return true
	}
	return p.Catch()
}
