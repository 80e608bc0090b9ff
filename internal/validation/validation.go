package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/julianstephens/ibadah/internal/constants"
	apperrors "github.com/julianstephens/ibadah/internal/errors"
	"github.com/julianstephens/ibadah/internal/models"
	"github.com/julianstephens/ibadah/internal/utils"
)

// IssueType represents the kind of problem found in stored data
type IssueType string

const (
	IssueInvalidDate       IssueType = "invalid_date"
	IssueIncompleteRecord  IssueType = "incomplete_record"
	IssueDuplicateRoutine  IssueType = "duplicate_routine_name"
	IssueEmptyRoutine      IssueType = "empty_routine"
	IssueInvalidTarget     IssueType = "invalid_target"
	IssueOrphanSession     IssueType = "orphan_session"
	IssueDuplicateID       IssueType = "duplicate_id"
	IssueInvalidReflection IssueType = "invalid_reflection"
)

// Issue is one problem found in stored data.
type Issue struct {
	Type        IssueType
	Description string
	IDs         []string
}

// ValidationResult contains all detected issues
type ValidationResult struct {
	Issues []Issue
}

// HasIssues returns true if there are any issues
func (vr *ValidationResult) HasIssues() bool {
	return len(vr.Issues) > 0
}

// informational issues describe states the app creates itself, such as
// sessions outliving their routine.
var informational = map[IssueType]bool{IssueOrphanSession: true}

// HasErrors reports issues other than informational ones.
func (vr *ValidationResult) HasErrors() bool {
	for _, issue := range vr.Issues {
		if !informational[issue.Type] {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all issues
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasIssues() {
		return "No issues detected."
	}

	var b strings.Builder
	b.WriteString("Issues detected:\n")
	for _, issue := range vr.Issues {
		fmt.Fprintf(&b, "- %s\n", issue.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t IssueType, desc string, ids ...string) {
	vr.Issues = append(vr.Issues, Issue{Type: t, Description: desc, IDs: ids})
}

// Validator checks user input and stored collections.
type Validator struct {
	v *validator.Validate
}

// New creates a new Validator
func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates a tagged input struct. Failures are returned as
// errors.ErrInvalidInput with one message per field.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s", field, fe.Tag())
}

// ValidatePrayerLog checks date keys and record shape.
func (v *Validator) ValidatePrayerLog(log models.PrayerLog) ValidationResult {
	var result ValidationResult

	dates := make([]string, 0, len(log))
	for date := range log {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		if !utils.ValidateDate(date) {
			result.add(IssueInvalidDate, fmt.Sprintf("Prayer record has invalid date %q", date), date)
			continue
		}
		rec := log[date]
		if len(rec) != constants.PrayersPerDay {
			result.add(IssueIncompleteRecord,
				fmt.Sprintf("Prayer record %s has %d prayers, expected %d", date, len(rec), constants.PrayersPerDay), date)
		}
	}
	return result
}

// ValidateReflections checks ids and field limits.
func (v *Validator) ValidateReflections(list []models.Reflection) ValidationResult {
	var result ValidationResult
	seen := make(map[string]bool, len(list))

	for _, r := range list {
		if seen[r.ID] {
			result.add(IssueDuplicateID, fmt.Sprintf("Reflection id %q appears more than once", r.ID), r.ID)
		}
		seen[r.ID] = true

		if err := v.Struct(models.ReflectionInput{Title: r.Title, Content: r.Content}); err != nil {
			result.add(IssueInvalidReflection, fmt.Sprintf("Reflection %q: %v", r.ID, err), r.ID)
		}
	}
	return result
}

// ValidateDhikr checks routines and their sessions.
func (v *Validator) ValidateDhikr(routines []models.DhikrRoutine, sessions []models.DhikrSession) ValidationResult {
	var result ValidationResult

	names := make(map[string]string)
	ids := make(map[string]bool, len(routines))
	for _, r := range routines {
		ids[r.ID] = true

		key := strings.ToLower(strings.TrimSpace(r.Name))
		if other, ok := names[key]; ok {
			result.add(IssueDuplicateRoutine, fmt.Sprintf("Duplicate routine name: %q", r.Name), other, r.ID)
		} else {
			names[key] = r.ID
		}

		if len(r.Items) == 0 {
			result.add(IssueEmptyRoutine, fmt.Sprintf("Routine %q has no dhikr", r.Name), r.ID)
		}
		for _, item := range r.Items {
			if item.Count < 1 {
				result.add(IssueInvalidTarget,
					fmt.Sprintf("Routine %q has target %d for %q", r.Name, item.Count, item.Transliteration), r.ID)
			}
		}
	}

	for _, s := range sessions {
		if !ids[s.RoutineID] {
			result.add(IssueOrphanSession,
				fmt.Sprintf("Session %s on %s refers to a deleted routine", s.ID, s.Date), s.ID)
		}
	}
	return result
}
