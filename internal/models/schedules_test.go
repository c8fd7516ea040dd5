package models

import (
	"math/rand"
	"testing"
	"time"
)

func schedule(id int64, name, start, end string, createdAt time.Time) ThemeSchedule {
	return ThemeSchedule{
		ID:        id,
		ThemeName: name,
		StartDate: start,
		EndDate:   end,
		CreatedAt: createdAt,
	}
}

var baseCreatedAt = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

func TestResolveActiveThemeScenarios(t *testing.T) {
	diwali := schedule(1, "Diwali", "2024-10-20", "2024-11-05", baseCreatedAt)
	holi := schedule(2, "Holi", "2024-10-25", "2024-10-26", baseCreatedAt.Add(time.Minute))

	tests := []struct {
		name      string
		day       string
		schedules []ThemeSchedule
		want      string
	}{
		{name: "single_match", day: "2024-10-25", schedules: []ThemeSchedule{diwali}, want: "Diwali"},
		{name: "later_overlap_wins", day: "2024-10-25", schedules: []ThemeSchedule{diwali, holi}, want: "Holi"},
		{name: "later_overlap_wins_reversed_input", day: "2024-10-25", schedules: []ThemeSchedule{holi, diwali}, want: "Holi"},
		{name: "outer_range_after_inner_ends", day: "2024-10-27", schedules: []ThemeSchedule{diwali, holi}, want: "Diwali"},
		{name: "no_match", day: "2024-12-25", schedules: []ThemeSchedule{diwali, holi}, want: DefaultThemeName},
		{name: "empty_set", day: "2024-10-25", schedules: nil, want: DefaultThemeName},
		{name: "inclusive_start", day: "2024-10-20", schedules: []ThemeSchedule{diwali}, want: "Diwali"},
		{name: "inclusive_end", day: "2024-11-05", schedules: []ThemeSchedule{diwali}, want: "Diwali"},
		{name: "day_after_end", day: "2024-11-06", schedules: []ThemeSchedule{diwali}, want: DefaultThemeName},
		{
			name:      "inverted_range_never_matches",
			day:       "2024-10-25",
			schedules: []ThemeSchedule{schedule(3, "Eid", "2024-10-30", "2024-10-20", baseCreatedAt)},
			want:      DefaultThemeName,
		},
		{
			name:      "blank_name_resolves_to_default",
			day:       "2024-10-25",
			schedules: []ThemeSchedule{diwali, schedule(4, "  ", "2024-10-25", "2024-10-25", baseCreatedAt.Add(time.Hour))},
			want:      DefaultThemeName,
		},
		{
			name:      "unparseable_dates_skipped",
			day:       "2024-10-25",
			schedules: []ThemeSchedule{diwali, schedule(5, "Holi", "soon", "later", baseCreatedAt.Add(time.Hour))},
			want:      "Diwali",
		},
		{
			name: "equal_created_at_prefers_higher_id",
			day:  "2024-10-25",
			schedules: []ThemeSchedule{
				schedule(9, "Eid", "2024-10-01", "2024-10-31", baseCreatedAt),
				schedule(7, "Christmas", "2024-10-01", "2024-10-31", baseCreatedAt),
			},
			want: "Eid",
		},
		{
			name:      "unknown_names_pass_through",
			day:       "2024-10-25",
			schedules: []ThemeSchedule{schedule(6, "Halloween", "2024-10-25", "2024-10-31", baseCreatedAt)},
			want:      "Halloween",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ResolveActiveTheme(test.day, test.schedules); got != test.want {
				t.Fatalf("ResolveActiveTheme(%s) = %q, want %q", test.day, got, test.want)
			}
		})
	}
}

func TestResolveActiveThemeProperties(t *testing.T) {
	names := []string{"Diwali", "Christmas", "Eid", "Holi", "Independence"}
	rng := rand.New(rand.NewSource(42))
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for iteration := 0; iteration < 200; iteration++ {
		count := rng.Intn(6)
		schedules := make([]ThemeSchedule, 0, count)
		for i := 0; i < count; i++ {
			start := epoch.AddDate(0, 0, rng.Intn(30))
			end := start.AddDate(0, 0, rng.Intn(10))
			schedules = append(schedules, schedule(
				int64(i+1),
				names[rng.Intn(len(names))],
				FormatDate(start),
				FormatDate(end),
				baseCreatedAt.Add(time.Duration(rng.Intn(1000))*time.Second),
			))
		}
		day := FormatDate(epoch.AddDate(0, 0, rng.Intn(45)))

		got := ResolveActiveTheme(day, schedules)

		var newest *ThemeSchedule
		for i := range schedules {
			if !schedules[i].Contains(day) {
				continue
			}
			if newest == nil || schedules[i].newerThan(*newest) {
				newest = &schedules[i]
			}
		}
		if newest == nil {
			if got != DefaultThemeName {
				t.Fatalf("iteration %d: got %q with no containing schedule, want Default", iteration, got)
			}
			continue
		}
		if got != newest.ThemeName {
			t.Fatalf("iteration %d: got %q, want newest containing schedule %q", iteration, got, newest.ThemeName)
		}

		shuffled := append([]ThemeSchedule(nil), schedules...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		if again := ResolveActiveTheme(day, shuffled); again != got {
			t.Fatalf("iteration %d: result depends on input order: %q vs %q", iteration, got, again)
		}
	}
}

func TestResolveActiveScheduleReturnsSingleWinner(t *testing.T) {
	schedules := []ThemeSchedule{
		schedule(1, "Diwali", "2024-10-20", "2024-11-05", baseCreatedAt),
		schedule(2, "Holi", "2024-10-25", "2024-10-26", baseCreatedAt.Add(time.Minute)),
		schedule(3, "Diwali", "2024-10-24", "2024-10-28", baseCreatedAt.Add(2*time.Minute)),
	}

	winner, ok := ResolveActiveSchedule("2024-10-25", schedules)
	if !ok || winner.ID != 3 {
		t.Fatalf("ResolveActiveSchedule() = (%d, %v), want (3, true)", winner.ID, ok)
	}
	if _, ok := ResolveActiveSchedule("2024-12-25", schedules); ok {
		t.Fatal("ResolveActiveSchedule() matched a day outside every range")
	}
}

func TestResolveActiveThemeAtUsesLocationDate(t *testing.T) {
	schedules := []ThemeSchedule{schedule(1, "Independence", "2024-08-15", "2024-08-15", baseCreatedAt)}
	// 20:00 UTC on the 14th is already the 15th in India.
	now := time.Date(2024, 8, 14, 20, 0, 0, 0, time.UTC)
	kolkata := time.FixedZone("IST", 5*60*60+30*60)

	if got := ResolveActiveThemeAt(now, kolkata, schedules); got != "Independence" {
		t.Fatalf("ResolveActiveThemeAt(IST) = %q, want Independence", got)
	}
	if got := ResolveActiveThemeAt(now, time.UTC, schedules); got != DefaultThemeName {
		t.Fatalf("ResolveActiveThemeAt(UTC) = %q, want Default", got)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{raw: "2024-10-20"},
		{raw: " 2024-10-20 "},
		{raw: "", wantErr: true},
		{raw: "2024-13-01", wantErr: true},
		{raw: "20/10/2024", wantErr: true},
		{raw: "2024-10-20T00:00:00Z", wantErr: true},
	}
	for _, test := range tests {
		_, err := ParseDate(test.raw)
		if (err != nil) != test.wantErr {
			t.Fatalf("ParseDate(%q) error = %v, wantErr %t", test.raw, err, test.wantErr)
		}
	}
}
