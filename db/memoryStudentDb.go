package db

import "advisorchat/models"

// ExampleProfiles is the built-in student table used when no database is
// configured. It is read-only; the chat flow never mutates it.
var ExampleProfiles = []*models.StudentProfile{
	{
		Phone:  "+5493531111111",
		Name:   "Ana García",
		Career: "Ingeniería en Sistemas de Información",
		Status: "Regular",
		Payments: []models.PaymentQuota{
			{Sequence: 1, Amount: 25000, Status: models.PaymentStatusComplete, DueDate: "2024-03-10"},
			{Sequence: 2, Amount: 25000, Status: models.PaymentStatusComplete, DueDate: "2024-04-10"},
			{Sequence: 3, Amount: 25000, Status: models.PaymentStatusPending, DueDate: "2024-05-10"},
		},
	},
	{
		Phone:  "+5493532222222",
		Name:   "Juan Pérez",
		Career: "Ingeniería Química",
		Status: "Regular",
		Payments: []models.PaymentQuota{
			{Sequence: 1, Amount: 25000, Status: models.PaymentStatusComplete, DueDate: "2024-03-10"},
			{Sequence: 2, Amount: 25000, Status: models.PaymentStatusOverdue, DueDate: "2024-04-10"},
			{Sequence: 3, Amount: 25000, Status: models.PaymentStatusPending, DueDate: "2024-05-10"},
		},
	},
	{
		Phone:  "+5493533333333",
		Name:   "Lucía Fernández",
		Career: "Ingeniería Electrónica",
		Status: "Libre",
		Payments: []models.PaymentQuota{
			{Sequence: 1, Amount: 25000, Status: models.PaymentStatusOverdue, DueDate: "2024-03-10"},
			{Sequence: 2, Amount: 25000, Status: models.PaymentStatusOverdue, DueDate: "2024-04-10"},
		},
	},
}

// MemoryStudentRepository is an immutable in-memory StudentRepository. It is
// safe for concurrent reads.
type MemoryStudentRepository struct {
	byPhone  map[string]*models.StudentProfile
	profiles []*models.StudentProfile
}

func NewMemoryStudentRepository(profiles []*models.StudentProfile) *MemoryStudentRepository {
	byPhone := make(map[string]*models.StudentProfile, len(profiles))
	for _, profile := range profiles {
		byPhone[profile.Phone] = profile
	}

	return &MemoryStudentRepository{
		byPhone:  byPhone,
		profiles: profiles,
	}
}

func (r *MemoryStudentRepository) FindByPhone(phone string) (*models.StudentProfile, error) {
	profile, ok := r.byPhone[phone]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return profile, nil
}

func (r *MemoryStudentRepository) GetAllStudents() ([]*models.StudentProfile, error) {
	students := make([]*models.StudentProfile, len(r.profiles))
	copy(students, r.profiles)
	return students, nil
}
