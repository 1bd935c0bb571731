package component

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type fakeComponent struct {
	name     string
	startErr error
	stopErr  error
	order    *[]string
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Start(context.Context) error {
	*f.order = append(*f.order, "start:"+f.name)
	return f.startErr
}

func (f *fakeComponent) Stop(context.Context) error {
	*f.order = append(*f.order, "stop:"+f.name)
	return f.stopErr
}

func (f *fakeComponent) Health(context.Context) Health {
	return Health{Name: f.name, Status: StatusHealthy}
}

type describedComponent struct {
	fakeComponent
}

func (d *describedComponent) Describe() Description {
	return Description{Type: "httpclient", Details: "http://localhost:9200", Port: 9200}
}

func TestRegisterDuplicate(t *testing.T) {
	var order []string
	r := NewRegistry()
	if err := r.Register(&fakeComponent{name: "a", order: &order}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(&fakeComponent{name: "a", order: &order}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if r.Get("a") == nil || r.Get("b") != nil {
		t.Error("unexpected Get result")
	}
}

func TestStartStopOrder(t *testing.T) {
	var order []string
	r := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		_ = r.Register(&fakeComponent{name: name, order: &order})
	}

	ctx := context.Background()
	if err := r.StartAll(ctx); err != nil {
		t.Fatalf("StartAll: %v", err)
	}
	if err := r.StopAll(ctx); err != nil {
		t.Fatalf("StopAll: %v", err)
	}

	want := []string{"start:a", "start:b", "start:c", "stop:c", "stop:b", "stop:a"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestStartFailureStopsOnlyStarted(t *testing.T) {
	var order []string
	r := NewRegistry()
	_ = r.Register(&fakeComponent{name: "a", order: &order})
	_ = r.Register(&fakeComponent{name: "b", order: &order, startErr: errors.New("no host")})
	_ = r.Register(&fakeComponent{name: "c", order: &order})

	ctx := context.Background()
	err := r.StartAll(ctx)
	if err == nil || !strings.Contains(err.Error(), "failed to start b") {
		t.Fatalf("expected start failure for b, got %v", err)
	}
	_ = r.StopAll(ctx)

	want := []string{"start:a", "start:b", "stop:a"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestStopAllCollectsErrors(t *testing.T) {
	var order []string
	r := NewRegistry()
	_ = r.Register(&fakeComponent{name: "a", order: &order, stopErr: errors.New("closed twice")})
	ctx := context.Background()
	_ = r.StartAll(ctx)

	err := r.StopAll(ctx)
	if err == nil || !strings.Contains(err.Error(), "failed to stop a") {
		t.Fatalf("expected stop error, got %v", err)
	}
}

func TestHealthAndDescribe(t *testing.T) {
	var order []string
	r := NewRegistry()
	_ = r.Register(&fakeComponent{name: "plain", order: &order})
	_ = r.Register(&describedComponent{fakeComponent{name: "client", order: &order}})

	health := r.HealthAll(context.Background())
	if len(health) != 2 || health[1].Name != "client" || health[1].Status != StatusHealthy {
		t.Errorf("unexpected health: %+v", health)
	}

	descs := r.Describe()
	if len(descs) != 1 {
		t.Fatalf("expected 1 description, got %d", len(descs))
	}
	if descs[0].Name != "client" || descs[0].Port != 9200 {
		t.Errorf("unexpected description: %+v", descs[0])
	}
}
