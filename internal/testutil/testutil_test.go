package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/KurtErsin/perfume/internal/event"
	"github.com/KurtErsin/perfume/pkg/models"
)

func TestLogger_NotNil(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestRecorder_RecordsEvents(t *testing.T) {
	bus := event.NewBus(Logger())
	rec := Record(bus)

	_ = bus.Publish(context.Background(), event.Event{Topic: "test.topic", Source: "test"})
	_ = bus.Publish(context.Background(), event.Event{Topic: "test.other", Source: "test"})

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("Events len = %d, want 2", len(events))
	}
	if events[0].Topic != "test.topic" {
		t.Errorf("events[0].Topic = %q, want test.topic", events[0].Topic)
	}
	if got := len(rec.Topic("test.other")); got != 1 {
		t.Errorf("Topic(test.other) len = %d, want 1", got)
	}
}

func TestRecorder_ResetAndStop(t *testing.T) {
	bus := event.NewBus(nil)
	rec := Record(bus)
	_ = bus.Publish(context.Background(), event.Event{Topic: "a"})
	rec.Reset()
	if len(rec.Events()) != 0 {
		t.Error("expected empty events after Reset")
	}
	rec.Stop()
	_ = bus.Publish(context.Background(), event.Event{Topic: "b"})
	if len(rec.Events()) != 0 {
		t.Error("expected no events after Stop")
	}
}

func TestClock_Advance(t *testing.T) {
	c := NewClock()
	if !c.Now().Equal(Epoch) {
		t.Fatalf("NewClock: got %v, want %v", c.Now(), Epoch)
	}
	got := c.Advance(5 * time.Minute)
	if want := Epoch.Add(5 * time.Minute); !got.Equal(want) || !c.Now().Equal(want) {
		t.Errorf("Advance: got %v, want %v", got, want)
	}
}

func TestClock_Func(t *testing.T) {
	c := NewClock()
	now := c.Func()
	c.Advance(time.Hour)
	if got := now().Sub(Epoch); got != time.Hour {
		t.Errorf("Func: elapsed = %v, want 1h", got)
	}
}

func TestNewPerfume_Defaults(t *testing.T) {
	p := NewPerfume()
	if p.ID == "" {
		t.Error("expected non-empty ID")
	}
	if p.Slug != "test-perfume" {
		t.Errorf("Slug = %q, want test-perfume", p.Slug)
	}
	if len(p.Notes) != 1 {
		t.Errorf("Notes len = %d, want 1", len(p.Notes))
	}
}

func TestNewPerfume_Options(t *testing.T) {
	p := NewPerfume(
		WithName("Noir (M100)"),
		WithBrand("Y"),
		WithGender(models.GenderMale),
		WithNotes(models.NoteWoody, models.NoteAmber),
		Niche(), Bottle100ml(), New(),
	)
	if p.Slug != "noir-m100" {
		t.Errorf("Slug = %q, want noir-m100", p.Slug)
	}
	if p.Brand != "Y" || p.Gender != models.GenderMale {
		t.Errorf("unexpected brand/gender: %q/%q", p.Brand, p.Gender)
	}
	if !p.IsNiche || !p.Is100ml || !p.IsNew {
		t.Error("expected all flags set")
	}
}
