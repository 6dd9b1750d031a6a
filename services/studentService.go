package services

import (
	"fmt"
	"log"
	"strings"

	"advisorchat/db"
	"advisorchat/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type StudentService struct {
	repo db.StudentRepository
}

func NewStudentService(repo db.StudentRepository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) GetStudentByPhone(phone string) (*models.StudentProfile, error) {
	log.Printf("[INFO] Starting student lookup by phone")

	phone = strings.TrimSpace(phone)
	if phone == "" {
		log.Printf("[ERROR] Empty phone number provided")
		return nil, fmt.Errorf("phone number is required")
	}

	student, err := s.repo.FindByPhone(phone)
	if err != nil {
		log.Printf("[ERROR] Failed to find student by phone: %v", err)
		return nil, err
	}

	log.Printf("[INFO] Successfully retrieved profile for %s", student.Name)
	return student, nil
}

func (s *StudentService) GetAllStudents() ([]*models.StudentProfile, error) {
	log.Printf("[INFO] Starting get all students")

	students, err := s.repo.GetAllStudents()
	if err != nil {
		log.Printf("[ERROR] Failed to get all students: %v", err)
		return nil, fmt.Errorf("failed to get students: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d students", len(students))
	return students, nil
}

// SearchStudentsByName returns the students whose name fuzzily matches the
// query. An empty query returns every student.
func (s *StudentService) SearchStudentsByName(query string) ([]*models.StudentProfile, error) {
	log.Printf("[INFO] Starting student search by name")

	students, err := s.GetAllStudents()
	if err != nil {
		return nil, fmt.Errorf("failed to get students for search: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		log.Printf("[INFO] No query provided, returning all %d students", len(students))
		return students, nil
	}

	var matching []*models.StudentProfile
	for _, student := range students {
		if s.studentMatchesName(student, query) {
			matching = append(matching, student)
		}
	}

	log.Printf("[INFO] Found %d students matching search criteria", len(matching))
	return matching, nil
}

func (s *StudentService) studentMatchesName(student *models.StudentProfile, query string) bool {
	query = strings.ToLower(query)
	name := strings.ToLower(student.Name)

	// Multi-word queries match against the full name
	if strings.Contains(query, " ") {
		return fuzzy.MatchNormalizedFold(query, name)
	}

	for _, word := range strings.Fields(name) {
		// Accent and case insensitive match per name word
		if fuzzy.MatchNormalizedFold(query, word) {
			return true
		}
		// Typo tolerance
		if fuzzy.LevenshteinDistance(query, word) <= 2 {
			return true
		}
	}

	return false
}
