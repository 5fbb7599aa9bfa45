package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Diagnosis is a comparable value; two diagnoses with the same kind and
// severity are the same diagnosis.
type Diagnosis struct {
	Kind     DiagnosisKind
	Severity SeverityLevel
}

func Malnourishment(s SeverityLevel) Diagnosis {
	return Diagnosis{Kind: DiagnosisMalnourishment, Severity: s}
}

func Dehydration(s SeverityLevel) Diagnosis {
	return Diagnosis{Kind: DiagnosisDehydration, Severity: s}
}

func (d Diagnosis) String() string {
	return fmt.Sprintf("%s (%s)", d.Kind, d.Severity)
}

// ParseDiagnosis parses "kind:severity", e.g. "dehydration:severe".
func ParseDiagnosis(s string) (Diagnosis, error) {
	kind, severity, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	if !ok {
		return Diagnosis{}, fmt.Errorf("diagnosis %q must be in the form kind:severity", s)
	}
	if !ValidDiagnosisKinds[kind] {
		return Diagnosis{}, fmt.Errorf("unknown diagnosis kind %q", kind)
	}
	if !ValidSeverityLevels[severity] {
		return Diagnosis{}, fmt.Errorf("unknown severity level %q", severity)
	}
	return Diagnosis{Kind: DiagnosisKind(kind), Severity: SeverityLevel(severity)}, nil
}

// DiagnosisSet holds unique diagnoses. The zero value is an empty set.
type DiagnosisSet map[Diagnosis]struct{}

func NewDiagnosisSet(ds ...Diagnosis) DiagnosisSet {
	set := make(DiagnosisSet, len(ds))
	for _, d := range ds {
		set[d] = struct{}{}
	}
	return set
}

func (s DiagnosisSet) Contains(d Diagnosis) bool {
	_, ok := s[d]
	return ok
}

// With returns a copy of the set that also contains d.
func (s DiagnosisSet) With(d Diagnosis) DiagnosisSet {
	out := NewDiagnosisSet(s.Sorted()...)
	out[d] = struct{}{}
	return out
}

// Without returns a copy of the set with d removed.
func (s DiagnosisSet) Without(d Diagnosis) DiagnosisSet {
	out := NewDiagnosisSet(s.Sorted()...)
	delete(out, d)
	return out
}

// Sorted returns the diagnoses ordered by kind then severity.
func (s DiagnosisSet) Sorted() []Diagnosis {
	out := make([]Diagnosis, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Severity < out[j].Severity
	})
	return out
}

// Patient is an immutable snapshot of the person being advised.
type Patient struct {
	Name      string
	Age       int
	Diagnoses DiagnosisSet
}

// WithAge returns a copy of the patient with the given age.
func (p Patient) WithAge(age int) Patient {
	p.Age = age
	return p
}

// WithDiagnoses returns a copy of the patient with the given diagnosis set.
func (p Patient) WithDiagnoses(ds DiagnosisSet) Patient {
	p.Diagnoses = ds
	return p
}
