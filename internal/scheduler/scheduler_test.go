package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/codr1/qlick/internal/models"
)

type stubRefresher struct {
	mu    sync.Mutex
	calls int
	theme *models.ThemeConfig
}

func (s *stubRefresher) Refresh(ctx context.Context) *models.ThemeConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		panic("refresh called without deadline")
	}
	return s.theme
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(time.UTC)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	svc.Start()
	t.Cleanup(func() {
		if err := svc.Stop(); err != nil {
			t.Errorf("Stop() error = %v", err)
		}
	})
	return svc
}

func TestAddJobValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		jobName  string
		cronExpr string
		wantErr  error
	}{
		{name: "empty_name", jobName: " ", cronExpr: "0 0 * * *", wantErr: ErrEmptyJobName},
		{name: "empty_cron", jobName: "job", cronExpr: "", wantErr: ErrEmptyCronExpr},
		{name: "invalid_cron", jobName: "job", cronExpr: "not a cron"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := svc.AddJob(test.jobName, test.cronExpr, func() {})
			if err == nil {
				t.Fatal("expected error")
			}
			if test.wantErr != nil && !errors.Is(err, test.wantErr) {
				t.Fatalf("error = %v, want %v", err, test.wantErr)
			}
		})
	}
}

func TestRegisterThemeRefresh(t *testing.T) {
	svc := newTestService(t)

	job, err := svc.RegisterThemeRefresh("0 0 * * *", &stubRefresher{theme: &models.ThemeConfig{Name: "Diwali"}})
	if err != nil {
		t.Fatalf("RegisterThemeRefresh() error = %v", err)
	}
	if job.Name() != ThemeRefreshJobName {
		t.Fatalf("job name = %q, want %q", job.Name(), ThemeRefreshJobName)
	}
	if len(svc.Jobs()) != 1 {
		t.Fatalf("jobs = %d, want 1", len(svc.Jobs()))
	}
}

func TestRefreshThemeCallsProviderWithDeadline(t *testing.T) {
	refresher := &stubRefresher{theme: &models.ThemeConfig{Name: "Holi"}}

	got := RefreshTheme(context.Background(), refresher)

	if got.Name != "Holi" {
		t.Fatalf("RefreshTheme() = %q, want Holi", got.Name)
	}
	if refresher.calls != 1 {
		t.Fatalf("refresh calls = %d, want 1", refresher.calls)
	}
}

func TestPackageFunctionsRequireInit(t *testing.T) {
	if service != nil {
		t.Skip("scheduler singleton already initialized")
	}
	if err := Start(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Start() error = %v, want ErrNotInitialized", err)
	}
	if _, err := AddJob("job", "0 0 * * *", func() {}); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("AddJob() error = %v, want ErrNotInitialized", err)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	svc, err := New(nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	svc.Start()
	first := svc.Stop()
	if second := svc.Stop(); second != first {
		t.Fatalf("second Stop() = %v, want %v", second, first)
	}
}
