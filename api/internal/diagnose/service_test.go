package diagnose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"crop-doctor/api/internal/apperr"
)

type fakeEngine struct {
	configured bool
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeEngine) Name() string     { return "fake" }
func (f *fakeEngine) GetModel() string { return "fake-model" }
func (f *fakeEngine) Configured() bool { return f.configured }

func (f *fakeEngine) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func TestReportMissingCredential(t *testing.T) {
	eng := &fakeEngine{configured: false}
	svc := NewService(eng, zap.NewNop().Sugar())

	_, err := svc.Report(context.Background(), "Potato___Late_blight", UserContext{}, "en")
	if apperr.CodeOf(err) != apperr.CodeConfiguration {
		t.Fatalf("error code: want=%q got=%q (err=%v)", apperr.CodeConfiguration, apperr.CodeOf(err), err)
	}
	if eng.calls != 0 {
		t.Fatalf("oracle called %d times despite missing credential", eng.calls)
	}
}

func TestReportEmptyDiseaseName(t *testing.T) {
	eng := &fakeEngine{configured: true}
	svc := NewService(eng, zap.NewNop().Sugar())

	_, err := svc.Report(context.Background(), "  ", UserContext{}, "en")
	if apperr.CodeOf(err) != apperr.CodeValidation {
		t.Fatalf("error code: want=%q got=%q", apperr.CodeValidation, apperr.CodeOf(err))
	}
	if eng.calls != 0 {
		t.Fatalf("oracle called %d times for invalid input", eng.calls)
	}
}

func TestReportReturnsOracleTextVerbatim(t *testing.T) {
	eng := &fakeEngine{configured: true, reply: "## Integrated Diagnosis\nLate blight."}
	svc := NewService(eng, zap.NewNop().Sugar())

	got, err := svc.Report(context.Background(), "Potato___Late_blight", UserContext{}, "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != eng.reply {
		t.Fatalf("report: want=%q got=%q", eng.reply, got)
	}
	if !strings.Contains(eng.lastPrompt, "Hindi") {
		t.Errorf("prompt sent to oracle missing resolved language:\n%s", eng.lastPrompt)
	}
}

func TestReportOracleFailure(t *testing.T) {
	eng := &fakeEngine{configured: true, err: errors.New("quota exceeded")}
	svc := NewService(eng, zap.NewNop().Sugar())

	_, err := svc.Report(context.Background(), "Potato___Late_blight", UserContext{}, "en")
	if apperr.CodeOf(err) != apperr.CodeOracle {
		t.Fatalf("error code: want=%q got=%q", apperr.CodeOracle, apperr.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error should carry the underlying message, got %q", err.Error())
	}
}
