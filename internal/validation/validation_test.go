package validation

import (
	"strings"
	"testing"

	"github.com/julianstephens/ibadah/internal/constants"
	apperrors "github.com/julianstephens/ibadah/internal/errors"
	"github.com/julianstephens/ibadah/internal/models"
)

func TestStruct_ReflectionInput(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   models.ReflectionInput
		wantErr string
	}{
		{name: "valid", input: models.ReflectionInput{Title: "Gratitude", Content: "Alhamdulillah"}},
		{name: "missing title", input: models.ReflectionInput{Content: "text"}, wantErr: "title is required"},
		{name: "missing content", input: models.ReflectionInput{Title: "t"}, wantErr: "content is required"},
		{
			name:    "title too long",
			input:   models.ReflectionInput{Title: strings.Repeat("a", 101), Content: "x"},
			wantErr: "title must be at most 100 characters",
		},
		{
			name:  "title of 100 multibyte runes",
			input: models.ReflectionInput{Title: strings.Repeat("ص", 100), Content: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !apperrors.Is(err, apperrors.ErrInvalidInput) {
				t.Errorf("error should wrap ErrInvalidInput: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestStruct_SettingsPatch(t *testing.T) {
	v := New()

	bad := "Hanafi"
	if err := v.Struct(models.SettingsPatch{CalculationMethod: &bad}); err == nil {
		t.Error("expected unknown calculation method to be rejected")
	}

	good := "MWL"
	if err := v.Struct(models.SettingsPatch{CalculationMethod: &good}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	zero := 0
	if err := v.Struct(models.SettingsPatch{ReminderMinutes: &zero}); err == nil {
		t.Error("expected zero reminder interval to be rejected")
	}

	if err := v.Struct(models.SettingsPatch{Location: &models.Location{Latitude: 120}}); err == nil {
		t.Error("expected out-of-range latitude to be rejected")
	}
}

func TestStruct_RoutineInput(t *testing.T) {
	v := New()

	if err := v.Struct(models.RoutineInput{Name: "Evening"}); err == nil {
		t.Error("expected routine without items to be rejected")
	}
	in := models.RoutineInput{Name: "Evening", Items: []models.RoutineItemInput{{ID: "1", Count: 33}}}
	if err := v.Struct(in); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidatePrayerLog(t *testing.T) {
	v := New()
	log := models.PrayerLog{
		"2024-01-01": models.NewDayRecord(),
		"2024-13-40": models.NewDayRecord(),
		"2024-01-02": models.DayRecord{constants.Fajr: {Status: constants.StatusOnTime}},
	}

	result := v.ValidatePrayerLog(log)
	if len(result.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %d: %s", len(result.Issues), result.FormatReport())
	}
	if result.Issues[0].Type != IssueIncompleteRecord || result.Issues[1].Type != IssueInvalidDate {
		t.Errorf("unexpected issue order: %+v", result.Issues)
	}
}

func TestValidateDhikr(t *testing.T) {
	v := New()
	routines := []models.DhikrRoutine{
		{ID: "a", Name: "Morning", Items: []models.DhikrItem{{ID: "1", Count: 33}}},
		{ID: "b", Name: "morning ", Items: []models.DhikrItem{{ID: "2", Count: 0}}},
	}
	sessions := []models.DhikrSession{
		{ID: "s1", RoutineID: "a", Date: "2024-01-01"},
		{ID: "s2", RoutineID: "gone", Date: "2024-01-02"},
	}

	result := v.ValidateDhikr(routines, sessions)

	want := map[IssueType]bool{IssueDuplicateRoutine: true, IssueInvalidTarget: true, IssueOrphanSession: true}
	if len(result.Issues) != len(want) {
		t.Fatalf("expected %d issues, got %s", len(want), result.FormatReport())
	}
	for _, issue := range result.Issues {
		if !want[issue.Type] {
			t.Errorf("unexpected issue %q", issue.Type)
		}
	}
}

func TestFormatReport_NoIssues(t *testing.T) {
	var r ValidationResult
	if r.FormatReport() != "No issues detected." {
		t.Errorf("unexpected report: %q", r.FormatReport())
	}
}

func TestHasErrors_IgnoresOrphanSessions(t *testing.T) {
	v := New()
	routines := []models.DhikrRoutine{{ID: "a", Name: "Morning", Items: []models.DhikrItem{{ID: "1", Count: 33}}}}
	sessions := []models.DhikrSession{{ID: "s1", RoutineID: "gone", Date: "2024-01-02"}}

	result := v.ValidateDhikr(routines, sessions)
	if !result.HasIssues() {
		t.Fatal("orphan session should be reported")
	}
	if result.HasErrors() {
		t.Error("orphan session should not count as an error")
	}

	routines = append(routines, models.DhikrRoutine{ID: "b", Name: "Empty"})
	result = v.ValidateDhikr(routines, sessions)
	if !result.HasErrors() {
		t.Error("empty routine should count as an error")
	}
}
