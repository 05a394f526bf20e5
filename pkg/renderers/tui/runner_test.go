package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Jekson949/fe-form/pkg/definition"
	"github.com/Jekson949/fe-form/pkg/emailcheck"
	"github.com/Jekson949/fe-form/pkg/form"
	"github.com/Jekson949/fe-form/pkg/payload"
	"github.com/Jekson949/fe-form/pkg/session"
)

// stubDriver replays scripted answers and records Info lines.
type stubDriver struct {
	t *testing.T

	inputs  []string
	selects []int

	inputErr error

	infos []string
}

func (d *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if d.inputErr != nil {
		return "", d.inputErr
	}
	if len(d.inputs) == 0 {
		d.t.Fatalf("unscripted input prompt: %q", cfg.Message)
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	return value, nil
}

func (d *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.t.Fatalf("unscripted confirm prompt: %q", cfg.Message)
	return false, nil
}

func (d *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		d.t.Fatalf("unscripted select prompt: %q (options %v)", cfg.Message, cfg.Options)
	}
	idx := d.selects[0]
	d.selects = d.selects[1:]
	return idx, nil
}

func (d *stubDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func (d *stubDriver) sawInfo(substr string) bool {
	for _, msg := range d.infos {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func newTestRunner(t *testing.T, driver *stubDriver) *Runner {
	t.Helper()

	formDef, err := definition.Load(context.Background())
	if err != nil {
		t.Fatalf("load definition: %v", err)
	}
	sess := session.New(
		session.WithChecker(emailcheck.NewSimulatedDirectory(emailcheck.WithDelay(0))),
	)
	runner, err := NewRunner(sess, formDef, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return runner
}

func wantPayload() payload.Payload {
	return payload.Payload{
		FirstName:        "Ann",
		LastName:         "Lee",
		DateOfBirth:      "09-03-2000",
		Framework:        "react",
		FrameworkVersion: "3.2.4",
		Email:            "a@b.co",
		Hobbies:          []form.HobbyEntry{{Name: "Chess", Duration: "2 years"}},
	}
}

func TestRunHappyPath(t *testing.T) {
	driver := &stubDriver{
		t:      t,
		inputs: []string{"Ann", "Lee", "2000-03-09", "a@b.co", "Chess", "2 years"},
		// framework react, react version 3.2.4, hobby menu Continue
		selects: []int{1, 1, 0},
	}
	runner := newTestRunner(t, driver)

	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if diff := cmp.Diff(wantPayload(), got); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
	if len(driver.inputs) != 0 || len(driver.selects) != 0 {
		t.Errorf("unused script: inputs %v, selects %v", driver.inputs, driver.selects)
	}
}

func TestRunRepromptsRejectedText(t *testing.T) {
	driver := &stubDriver{
		t:       t,
		inputs:  []string{"", "Ann", "Lee", "2000-03-09", "a@b.co", "Chess", "2 years"},
		selects: []int{1, 1, 0},
	}
	runner := newTestRunner(t, driver)

	if _, err := runner.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !driver.sawInfo("required") {
		t.Errorf("blank first name was not reported: %v", driver.infos)
	}
}

func TestRunRepromptsUnparseableDate(t *testing.T) {
	driver := &stubDriver{
		t:       t,
		inputs:  []string{"Ann", "Lee", "03/09/2000", "2000-03-09", "a@b.co", "Chess", "2 years"},
		selects: []int{1, 1, 0},
	}
	runner := newTestRunner(t, driver)

	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.DateOfBirth != "09-03-2000" {
		t.Errorf("DateOfBirth = %q, want %q", got.DateOfBirth, "09-03-2000")
	}
	if !driver.sawInfo("YYYY-MM-DD") {
		t.Errorf("date format hint missing: %v", driver.infos)
	}
}

func TestRunEmailConflictRepromptsAndRecovers(t *testing.T) {
	driver := &stubDriver{
		t:       t,
		inputs:  []string{"Ann", "Lee", "2000-03-09", "test@test.test", "Chess", "2 years", "a@b.co"},
		selects: []int{1, 1, 0},
	}
	runner := newTestRunner(t, driver)

	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got.Email != "a@b.co" {
		t.Errorf("Email = %q, want corrected address", got.Email)
	}
	if !driver.sawInfo("already exists") {
		t.Errorf("conflict was not reported: %v", driver.infos)
	}
}

func TestRunHobbyRemovalDownToEmptyList(t *testing.T) {
	driver := &stubDriver{
		t:      t,
		inputs: []string{"Ann", "Lee", "2000-03-09", "a@b.co", "Chess", "2 years", "Go", "1 year"},
		// framework, version, menu Remove, pick entry 0, menu Add, menu Continue
		selects: []int{1, 1, 2, 0, 1, 0},
	}
	runner := newTestRunner(t, driver)

	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []form.HobbyEntry{{Name: "Go", Duration: "1 year"}}
	if diff := cmp.Diff(want, got.Hobbies); diff != "" {
		t.Fatalf("hobbies mismatch (-want +got):\n%s", diff)
	}
	if !driver.sawInfo("at least one hobby") {
		t.Errorf("minimum-count warning missing after emptying the list: %v", driver.infos)
	}
}

func TestRunEmptiedListForcesAppendBeforeSubmit(t *testing.T) {
	driver := &stubDriver{
		t:      t,
		inputs: []string{"Ann", "Lee", "2000-03-09", "a@b.co", "Chess", "2 years", "Go", "1 year"},
		// framework, version, menu Remove, pick entry 0, menu Continue;
		// the submit loop appends and prompts the replacement entry.
		selects: []int{1, 1, 2, 0, 0},
	}
	runner := newTestRunner(t, driver)

	got, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []form.HobbyEntry{{Name: "Go", Duration: "1 year"}}
	if diff := cmp.Diff(want, got.Hobbies); diff != "" {
		t.Fatalf("hobbies mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPropagatesAbort(t *testing.T) {
	driver := &stubDriver{t: t, inputErr: ErrAborted}
	runner := newTestRunner(t, driver)

	if _, err := runner.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("run error = %v, want ErrAborted", err)
	}
}

func TestNewRunnerRequiresSession(t *testing.T) {
	if _, err := NewRunner(nil, definition.Form{}); err == nil {
		t.Fatalf("nil session must be rejected")
	}
}
