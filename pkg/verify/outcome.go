package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDiscard signals that the supplied operands do not satisfy a check's
// precondition. The input is excluded from the sample space, not failed,
// and the harness is expected to retry with fresh operands.
var ErrDiscard = errors.New("precondition not met")

// Violation is a falsified property. It carries the operands that
// triggered it so the harness can report the counterexample.
type Violation struct {
	ID       uuid.UUID
	Property string
	Message  string
	Operands []string
}

func (v *Violation) Error() string {
	if len(v.Operands) == 0 {
		return fmt.Sprintf("%s: %s", v.Property, v.Message)
	}
	return fmt.Sprintf("%s: %s [%s]", v.Property, v.Message, strings.Join(v.Operands, ", "))
}

// Violated builds a Violation from the given operands and mirrors it to
// the trace channel.
func Violated(property, message string, operands ...fmt.Stringer) *Violation {
	v := &Violation{
		ID:       uuid.New(),
		Property: property,
		Message:  message,
	}
	for _, o := range operands {
		v.Operands = append(v.Operands, o.String())
	}
	trace.Warn("property violated",
		zap.String("id", v.ID.String()),
		zap.String("property", property),
		zap.String("message", message),
		zap.Strings("operands", v.Operands))
	return v
}

// Check returns nil when ok holds, otherwise a Violation.
func Check(ok bool, property, message string, operands ...fmt.Stringer) error {
	if ok {
		return nil
	}
	return Violated(property, message, operands...)
}

var trace = zap.NewNop()

// SetTrace installs the logger used for the debug side channel. Install
// once before driving checks; the default logger discards everything.
func SetTrace(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	trace = l
}

// TraceCall records one library-under-test invocation on the side channel.
func TraceCall(op string, err error, vals ...fmt.Stringer) {
	if !trace.Core().Enabled(zap.DebugLevel) {
		return
	}
	args := make([]string, 0, len(vals))
	for _, v := range vals {
		args = append(args, v.String())
	}
	trace.Debug("call", zap.String("op", op), zap.Strings("args", args), zap.Error(err))
}
