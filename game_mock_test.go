package slingshot_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/phanxgames/slingshot"
	"github.com/phanxgames/slingshot/mocks"
	"go.uber.org/mock/gomock"
)

// eventOf matches a GameEvent by type.
type eventOf slingshot.GameEventType

func (m eventOf) Matches(x any) bool {
	e, ok := x.(slingshot.GameEvent)
	return ok && e.Type == slingshot.GameEventType(m)
}

func (m eventOf) String() string {
	return fmt.Sprintf("is a %s event", slingshot.GameEventType(m))
}

func newMockedGame(t *testing.T, burst slingshot.BurstSpawner, sink slingshot.EventSink) (*slingshot.Game, *slingshot.Sprite) {
	t.Helper()
	cfg := slingshot.DefaultConfig()
	cfg.Drag.VelocityRatio = 0.1

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	handle := slingshot.NewSprite("handle", 190, 350, 20, 20)
	g, err := slingshot.NewGame(cfg, slingshot.Rect{Width: 400, Height: 400}, slingshot.Anchors{
		Handle:     handle,
		Projectile: slingshot.NewSprite("projectile", 195, 350, 10, 20),
		Targets:    []*slingshot.Sprite{slingshot.NewSprite("target", 190, 100, 20, 20)},
	}, slingshot.Options{
		Burst: burst,
		Sink:  sink,
		Rand:  slingshot.NewRand(9),
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g, handle
}

func launchAndFly(t *testing.T, g *slingshot.Game, handle *slingshot.Sprite) {
	t.Helper()
	c := handle.Center()
	g.Press(c)
	g.Move(slingshot.Vec2{X: c.X, Y: c.Y + 30})
	if !g.Release() {
		t.Fatal("launch refused")
	}
	for i := 0; g.Flying(); i++ {
		if i > 6000 {
			t.Fatal("flight never ended")
		}
		g.Update(1.0 / 60)
	}
}

func TestGameSpawnsBurstAtTargetCenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	burst := mocks.NewMockBurstSpawner(ctrl)
	burst.EXPECT().SpawnBurst(200.0, 110.0).Times(1)

	g, handle := newMockedGame(t, burst, nil)
	launchAndFly(t, g, handle)

	if g.Status() != slingshot.StatusFinished {
		t.Errorf("status = %v, want finished", g.Status())
	}
}

func TestGameEmitsLifecycleEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	var finish slingshot.GameEvent
	gomock.InOrder(
		sink.EXPECT().EmitEvent(eventOf(slingshot.EventReset)),
		sink.EXPECT().EmitEvent(eventOf(slingshot.EventStart)),
		sink.EXPECT().EmitEvent(eventOf(slingshot.EventLaunch)).Do(func(e slingshot.GameEvent) {
			if e.X != 0 || e.Y >= 0 {
				t.Errorf("launch velocity (%v, %v), want straight up", e.X, e.Y)
			}
		}),
		sink.EXPECT().EmitEvent(eventOf(slingshot.EventHit)).Do(func(e slingshot.GameEvent) {
			if e.HitCount != 1 || e.Total != 1 || e.TargetID == 0 {
				t.Errorf("hit event = %+v", e)
			}
		}),
		sink.EXPECT().EmitEvent(eventOf(slingshot.EventFinish)).Do(func(e slingshot.GameEvent) {
			finish = e
		}),
	)

	g, handle := newMockedGame(t, nil, sink)
	launchAndFly(t, g, handle)

	// The clock ticks a second per read: started at press, read again at finish.
	if finish.Score != "1.00" || finish.Score != g.Score() {
		t.Errorf("finish score %q, game score %q, want \"1.00\"", finish.Score, g.Score())
	}
	if finish.Session != g.Session() {
		t.Error("finish event carries a stale session id")
	}
}

func TestGameResetEmitsNewSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockEventSink(ctrl)

	var sessions []slingshot.GameEvent
	sink.EXPECT().EmitEvent(eventOf(slingshot.EventReset)).Times(2).Do(func(e slingshot.GameEvent) {
		sessions = append(sessions, e)
	})

	g, _ := newMockedGame(t, nil, sink)
	g.Reset()

	if len(sessions) != 2 || sessions[0].Session == sessions[1].Session {
		t.Errorf("reset events = %+v, want two distinct sessions", sessions)
	}
	if sessions[1].HitCount != 0 || sessions[1].Total != 1 {
		t.Errorf("reset event = %+v", sessions[1])
	}
}
