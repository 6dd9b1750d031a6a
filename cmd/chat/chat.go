package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"advisorchat/config"
	"advisorchat/db"
	"advisorchat/services"
	"advisorchat/services/advisor"
)

func main() {
	cfg := config.Load()

	var repo db.StudentRepository
	if cfg.DatabaseURL != "" {
		pgRepo, err := db.NewPostgresStudentRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize student database: %v", err)
		}
		defer pgRepo.Close()
		repo = pgRepo
	} else {
		repo = db.NewMemoryStudentRepository(db.ExampleProfiles)
	}

	gateway, err := buildGateway(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize completion gateway: %v", err)
	}

	studentService := services.NewStudentService(repo)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	advisorService := advisor.NewService(studentService, gateway, rng)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("Ingrese el número de teléfono del alumno en formato E.164: ")
	phone, ok := readLine(ctx, scanner)
	if !ok {
		return
	}

	session, err := advisorService.StartSession(strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, db.ErrStudentNotFound) {
			fmt.Println(advisor.StudentNotFoundMessage)
			return
		}
		log.Fatalf("Failed to start session: %v", err)
	}

	fmt.Printf("%s: %s\n", session.AdvisorName, session.Greeting)

	for {
		fmt.Print("Tú: ")
		line, ok := readLine(ctx, scanner)
		if !ok {
			return
		}

		reply, err := advisorService.SendMessage(ctx, session, line)
		if err != nil {
			fmt.Println(advisor.CompletionErrorMessage)
			continue
		}

		fmt.Printf("%s: %s\n", session.AdvisorName, reply)
	}
}

func buildGateway(cfg config.Config) (advisor.CompletionGateway, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			log.Fatal("ANTHROPIC_API_KEY environment variable is required")
		}
		return advisor.NewAnthropicGateway(cfg.AnthropicAPIKey, cfg.LLMModel)
	default:
		if cfg.OpenAIAPIKey == "" {
			log.Fatal("OPENAI_API_KEY environment variable is required")
		}
		return advisor.NewOpenAIGateway(cfg.OpenAIAPIKey, cfg.LLMModel)
	}
}

type readResult struct {
	line string
	ok   bool
}

// readLine reads one line from stdin unless the context is cancelled first.
// Returns ok=false on cancellation or EOF.
func readLine(ctx context.Context, scanner *bufio.Scanner) (string, bool) {
	ch := make(chan readResult, 1)
	go func() {
		if scanner.Scan() {
			ch <- readResult{line: scanner.Text(), ok: true}
			return
		}
		ch <- readResult{}
	}()

	select {
	case <-ctx.Done():
		fmt.Println()
		return "", false
	case res := <-ch:
		return res.line, res.ok
	}
}
