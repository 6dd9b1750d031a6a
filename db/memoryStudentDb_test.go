package db

import (
	"errors"
	"testing"

	"advisorchat/models"
)

func testProfiles() []*models.StudentProfile {
	return []*models.StudentProfile{
		{
			Phone:  "+5491111",
			Name:   "Ana",
			Career: "CS",
			Status: "active",
			Payments: []models.PaymentQuota{
				{Sequence: 1, Amount: 100, Status: models.PaymentStatusComplete, DueDate: "2024-01-01"},
			},
		},
		{Phone: "+5492222", Name: "Juan", Career: "IQ", Status: "active"},
	}
}

func TestMemoryFindByPhone(t *testing.T) {
	repo := NewMemoryStudentRepository(testProfiles())

	student, err := repo.FindByPhone("+5491111")
	if err != nil {
		t.Fatalf("FindByPhone() failed: %v", err)
	}
	if student.Name != "Ana" || len(student.Payments) != 1 {
		t.Errorf("unexpected profile: %+v", student)
	}
}

func TestMemoryFindByPhoneUnknown(t *testing.T) {
	repo := NewMemoryStudentRepository(testProfiles())

	// Repeated misses stay misses and never mutate the store.
	for i := 0; i < 3; i++ {
		_, err := repo.FindByPhone("+0000")
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	}

	students, err := repo.GetAllStudents()
	if err != nil {
		t.Fatalf("GetAllStudents() failed: %v", err)
	}
	if len(students) != 2 {
		t.Errorf("store size changed after misses: %d", len(students))
	}
}

func TestMemoryGetAllStudentsReturnsCopy(t *testing.T) {
	repo := NewMemoryStudentRepository(testProfiles())

	students, err := repo.GetAllStudents()
	if err != nil {
		t.Fatalf("GetAllStudents() failed: %v", err)
	}

	students[0] = nil

	again, err := repo.GetAllStudents()
	if err != nil {
		t.Fatalf("GetAllStudents() failed: %v", err)
	}
	if again[0] == nil {
		t.Errorf("mutating the returned slice changed the store")
	}
}

func TestExampleProfilesHavePayments(t *testing.T) {
	repo := NewMemoryStudentRepository(ExampleProfiles)

	students, err := repo.GetAllStudents()
	if err != nil {
		t.Fatalf("GetAllStudents() failed: %v", err)
	}
	if len(students) == 0 {
		t.Fatal("example profiles are empty")
	}

	for _, student := range students {
		if student.Phone == "" || len(student.Payments) == 0 {
			t.Errorf("example profile incomplete: %+v", student)
		}
	}
}
