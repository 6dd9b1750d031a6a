package advisor

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"advisorchat/models"
	"advisorchat/services"
)

// User-facing messages shared by the console and HTTP drivers.
const (
	StudentNotFoundMessage = "No se encontró un perfil de estudiante con ese número de teléfono."
	CompletionErrorMessage = "Error al llamar a la API de OpenAI."
)

// Service orchestrates one conversation per student: profile lookup, system
// prompt, advisor assignment and the rolling history sent to the gateway.
type Service struct {
	students *services.StudentService
	gateway  CompletionGateway
	rng      *rand.Rand

	mu       sync.Mutex
	sessions map[string]*Session
}

// Session is one active conversation. The console driver owns its session
// directly; the HTTP driver keeps sessions in the service, keyed by phone.
type Session struct {
	Phone       string
	AdvisorName string
	Greeting    string

	mu      sync.Mutex
	history *History
}

// NewService builds the chat service. The random source drives advisor
// selection and is injected so tests can seed it.
func NewService(students *services.StudentService, gateway CompletionGateway, rng *rand.Rand) *Service {
	return &Service{
		students: students,
		gateway:  gateway,
		rng:      rng,
		sessions: make(map[string]*Session),
	}
}

// StartSession resolves the student profile, renders the system prompt and
// seeds the history with it plus a personalized greeting. Returns
// db.ErrStudentNotFound (unwrapped) when the phone is unknown.
func (s *Service) StartSession(phone string) (*Session, error) {
	profile, err := s.students.GetStudentByPhone(phone)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(CompletionPrompt, map[string]string{
		"student_name":     profile.Name,
		"student_career":   profile.Career,
		"student_status":   profile.Status,
		"student_payments": BuildStudentPayments(profile.Payments),
		"current_date":     time.Now().Format("2006-01-02"),
	})

	advisorName := Advisors[s.rng.Intn(len(Advisors))]
	greeting := fmt.Sprintf(
		"Hola, un gusto conversar contigo %s. Mi nombre es %s, soy un asesor académico de FRVM. ¿Como puedo ayudarte hoy?",
		profile.Name, advisorName,
	)

	session := &Session{
		Phone:       profile.Phone,
		AdvisorName: advisorName,
		Greeting:    greeting,
		history:     NewHistory(),
	}
	session.history.Append(models.RoleSystem, prompt)
	session.history.Append(models.RoleAssistant, greeting)

	log.Printf("[INFO] Started session for %s with advisor %s", profile.Phone, advisorName)
	return session, nil
}

// SendMessage appends the user turn, sends the full history to the gateway
// and appends the reply. On gateway failure the user turn stays in the
// history but no assistant turn is appended, and the error carries
// ErrCompletion for the driver to match.
func (s *Service) SendMessage(ctx context.Context, session *Session, userMessage string) (string, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	session.history.Append(models.RoleUser, userMessage)

	reply, err := s.gateway.Complete(ctx, session.history.Messages())
	if err != nil {
		log.Printf("[ERROR] Completion failed for session %s: %v", session.Phone, err)
		return "", err
	}

	session.history.Append(models.RoleAssistant, reply)
	return reply, nil
}

// Chat handles one request/response turn for the HTTP driver, reusing the
// session for the phone across calls so the conversation keeps its context.
func (s *Service) Chat(ctx context.Context, phone, userMessage string) (string, error) {
	session, err := s.session(phone)
	if err != nil {
		return "", err
	}

	return s.SendMessage(ctx, session, userMessage)
}

func (s *Service) session(phone string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[phone]; ok {
		return session, nil
	}

	session, err := s.StartSession(phone)
	if err != nil {
		return nil, err
	}

	s.sessions[phone] = session
	return session, nil
}
