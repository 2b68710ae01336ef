package service

import (
	"testing"
	"time"
)

func TestSubmissionGenerate(t *testing.T) {
	fixed := time.Date(2025, 10, 22, 15, 4, 5, 0, time.UTC)
	orig := Now
	Now = func() time.Time { return fixed }
	defer func() { Now = orig }()

	s := NewSubmissionService()
	record := s.Generate("Orthopedic Implant")

	if record.DeviceName != "Mock Orthopedic Implant 20251022" {
		t.Errorf("unexpected device name: %q", record.DeviceName)
	}
	if record.SubmissionDate != "2025-10-22" {
		t.Errorf("unexpected submission date: %q", record.SubmissionDate)
	}
	if record.Status != "Pending Review" {
		t.Errorf("unexpected status: %q", record.Status)
	}
	if record.Reviewer != "Dr. Evelyn Reed" {
		t.Errorf("unexpected reviewer: %q", record.Reviewer)
	}
}

func TestSubmissionGenerateDefaultsDeviceType(t *testing.T) {
	s := NewSubmissionService()
	record := s.Generate("")

	if record.Status != "Pending Review" {
		t.Errorf("unexpected status: %q", record.Status)
	}
	if record.DeviceName == "" || record.DeviceName[:5] != "Mock " {
		t.Errorf("expected generated device name, got %q", record.DeviceName)
	}
}
