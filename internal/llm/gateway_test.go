// README: Tests for primary/fallback gateway behavior.
package llm

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name  string
	reply string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(ctx context.Context, messages []Message, temperature float32, maxTokens int) (string, error) {
	s.calls++
	return s.reply, s.err
}

var testMessages = []Message{{Role: RoleUser, Content: "hello"}}

func TestInvoke_PrimarySuccess(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: "hi there"}
	fallback := &stubProvider{name: "fallback", reply: "should not run"}
	gw := NewGateway(primary, fallback)

	out, err := gw.Invoke(context.Background(), testMessages, 0.7, 256)
	if err != nil {
		t.Fatal(err)
	}
	if out != "hi there" {
		t.Fatalf("out = %q", out)
	}
	if fallback.calls != 0 {
		t.Fatal("fallback called despite primary success")
	}
}

func TestInvoke_FallbackOnPrimaryFailure(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("rate limited")}
	fallback := &stubProvider{name: "fallback", reply: "backup answer"}
	gw := NewGateway(primary, fallback)

	out, err := gw.Invoke(context.Background(), testMessages, 0.7, 256)
	if err != nil {
		t.Fatal(err)
	}
	if out != "backup answer" {
		t.Fatalf("out = %q", out)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("calls = %d/%d", primary.calls, fallback.calls)
	}
}

func TestInvoke_EmptyReplyTriggersFallback(t *testing.T) {
	primary := &stubProvider{name: "primary", reply: ""}
	fallback := &stubProvider{name: "fallback", reply: "backup answer"}
	gw := NewGateway(primary, fallback)

	out, err := gw.Invoke(context.Background(), testMessages, 0.7, 256)
	if err != nil {
		t.Fatal(err)
	}
	if out != "backup answer" {
		t.Fatalf("out = %q", out)
	}
}

func TestInvoke_AllBackendsFail(t *testing.T) {
	primary := &stubProvider{name: "primary", err: errors.New("down")}
	fallback := &stubProvider{name: "fallback", err: errors.New("also down")}
	gw := NewGateway(primary, fallback)

	_, err := gw.Invoke(context.Background(), testMessages, 0.7, 256)
	if !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("err = %v, want ErrGenerationUnavailable", err)
	}
}

func TestInvoke_NilProvidersSkipped(t *testing.T) {
	fallback := &stubProvider{name: "fallback", reply: "only option"}
	gw := NewGateway(nil, fallback)

	out, err := gw.Invoke(context.Background(), testMessages, 0.7, 256)
	if err != nil {
		t.Fatal(err)
	}
	if out != "only option" {
		t.Fatalf("out = %q", out)
	}

	empty := NewGateway(nil, nil)
	if _, err := empty.Invoke(context.Background(), testMessages, 0.7, 256); !errors.Is(err, ErrGenerationUnavailable) {
		t.Fatalf("err = %v, want ErrGenerationUnavailable", err)
	}
}
