package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/repository"
)

const (
	minTemperatureCelsius = 30.0
	maxTemperatureCelsius = 45.0
	maxPatientAge         = 150
)

// SessionDefaults describes the patient a fresh or reset session starts with.
type SessionDefaults struct {
	PatientName string
	PatientAge  int
}

func (d SessionDefaults) patient() domain.Patient {
	return domain.Patient{
		Name:      d.PatientName,
		Age:       d.PatientAge,
		Diagnoses: domain.NewDiagnosisSet(),
	}
}

// sessionRepos groups the repositories of one transaction.
type sessionRepos struct {
	patients repository.PatientRepo
	intakes  repository.IntakeRepo
	clock    repository.ClockRepo
	checkIns repository.CheckInLogRepo
}

func newSessionRepos(tx db.DBTX) sessionRepos {
	return sessionRepos{
		patients: repository.NewSQLitePatientRepo(tx),
		intakes:  repository.NewSQLiteIntakeRepo(tx),
		clock:    repository.NewSQLiteClockRepo(tx),
		checkIns: repository.NewSQLiteCheckInLogRepo(tx),
	}
}

type sessionState struct {
	patient domain.Patient
	now     time.Time
	history []domain.DoseIntake
}

func (r sessionRepos) load(ctx context.Context) (sessionState, error) {
	p, err := r.patients.Get(ctx)
	if err != nil {
		return sessionState{}, fmt.Errorf("loading patient: %w", err)
	}
	now, err := r.clock.Get(ctx)
	if err != nil {
		return sessionState{}, fmt.Errorf("loading clock: %w", err)
	}
	history, err := r.intakes.List(ctx)
	if err != nil {
		return sessionState{}, fmt.Errorf("loading intake history: %w", err)
	}
	return sessionState{patient: *p, now: now, history: history}, nil
}

func validateTemperature(celsius float64) error {
	if math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return contract.Errorf(contract.ErrInvalidTemperature, "temperature must be a number")
	}
	if celsius < minTemperatureCelsius || celsius > maxTemperatureCelsius {
		return contract.Errorf(contract.ErrInvalidTemperature,
			"temperature %.1f°C is outside %.0f-%.0f°C", celsius, minTemperatureCelsius, maxTemperatureCelsius)
	}
	return nil
}

func validateDosage(mg float64) error {
	if math.IsNaN(mg) || math.IsInf(mg, 0) || mg <= 0 {
		return contract.Errorf(contract.ErrInvalidDosage, "dosage must be a positive amount of mg, got %v", mg)
	}
	return nil
}

func validateAge(age int) error {
	if age < 0 || age > maxPatientAge {
		return contract.Errorf(contract.ErrInvalidAge, "age must be between 0 and %d, got %d", maxPatientAge, age)
	}
	return nil
}

func validateDiagnosis(d domain.Diagnosis) error {
	if !domain.ValidDiagnosisKinds[string(d.Kind)] || !domain.ValidSeverityLevels[string(d.Severity)] {
		return contract.Errorf(contract.ErrInvalidDiagnosis, "unknown diagnosis %s", d)
	}
	return nil
}
