package advisor

import (
	"fmt"
	"regexp"
	"strings"

	"advisorchat/models"

	"github.com/samber/lo"
)

// Advisors is the roster of display names assigned to conversations. The
// assignment is purely cosmetic.
var Advisors = []string{"Carla", "Martín", "Sofía", "Federico", "Lucía"}

// CompletionPrompt is the system-prompt template. Markers of the form {key}
// are substituted by BuildPrompt.
const CompletionPrompt = `Eres un asesor académico virtual de la Facultad Regional Villa María (FRVM).
Atiendes consultas de alumnos sobre su situación académica y el estado de sus cuotas.

Fecha actual: {current_date}

Datos del alumno:
- Nombre: {student_name}
- Carrera: {student_career}
- Estado académico: {student_status}

Cuotas del alumno:
{student_payments}

Indicaciones:
- Responde siempre en español, con un tono cordial y profesional.
- Responde únicamente consultas sobre la situación académica y los pagos del alumno.
- Si una cuota está completada, no menciones su fecha de vencimiento.
- Si el alumno pregunta por temas ajenos a la facultad, indícale amablemente que solo puedes ayudarlo con temas académicos.`

var promptKeyPattern = regexp.MustCompile(`\{(.*?)\}`)

// BuildPrompt replaces every {key} marker in the template with the bound
// value. Markers match lazily; a key absent from the bindings renders as the
// empty string, never as the literal marker.
func BuildPrompt(template string, keys map[string]string) string {
	return promptKeyPattern.ReplaceAllStringFunc(template, func(marker string) string {
		return keys[marker[1:len(marker)-1]]
	})
}

// BuildStudentPayments renders one line per quota, in input order. The
// due-date clause is suppressed for completed quotas.
func BuildStudentPayments(payments []models.PaymentQuota) string {
	lines := lo.Map(payments, func(quota models.PaymentQuota, _ int) string {
		line := fmt.Sprintf("- Cuota %d: (Monto: %v) (Estado: %s) ", quota.Sequence, quota.Amount, quota.Status)
		if quota.Status != models.PaymentStatusComplete {
			line += fmt.Sprintf("(Vencimiento: %s)", quota.DueDate)
		}
		return line
	})

	return strings.Join(lines, "\n")
}
