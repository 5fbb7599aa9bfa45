package cli

import (
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/spf13/pflag"
)

// diagnosisValue is a pflag.Value accepting "kind:severity".
type diagnosisValue struct {
	d   domain.Diagnosis
	set bool
}

var _ pflag.Value = (*diagnosisValue)(nil)

func (v *diagnosisValue) String() string {
	if !v.set {
		return ""
	}
	return string(v.d.Kind) + ":" + string(v.d.Severity)
}

func (v *diagnosisValue) Set(s string) error {
	d, err := domain.ParseDiagnosis(s)
	if err != nil {
		return err
	}
	v.d = d
	v.set = true
	return nil
}

func (v *diagnosisValue) Type() string { return "kind:severity" }
