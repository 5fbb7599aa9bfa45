package domain

import "time"

type Temperature struct {
	Value float64
	Unit  TemperatureUnit
}

func CelsiusTemperature(v float64) Temperature {
	return Temperature{Value: v, Unit: Celsius}
}

type Dosage struct {
	Amount float64
	Unit   DosageUnit
}

func Milligrams(amount float64) Dosage {
	return Dosage{Amount: amount, Unit: Milligram}
}

// MedicationAdministration describes what was given and how. Only the dosage
// takes part in dose arithmetic.
type MedicationAdministration struct {
	Medication        Medication
	Dosage            Dosage
	ApplicationMethod ApplicationMethod
}

// DoseIntake is a single historical administration event.
type DoseIntake struct {
	ID             string
	Administration MedicationAdministration
	TimeOfIntake   time.Time
}

// NewParacetamolIntake builds an oral paracetamol intake of amount mg at t.
func NewParacetamolIntake(amount float64, t time.Time) DoseIntake {
	return DoseIntake{
		Administration: MedicationAdministration{
			Medication:        Paracetamol,
			Dosage:            Milligrams(amount),
			ApplicationMethod: Oral,
		},
		TimeOfIntake: t,
	}
}

// CheckInData is a single observation submitted by the patient.
type CheckInData struct {
	Time          time.Time
	Temperature   Temperature
	FeelingBetter bool
}
