package db

import (
	"database/sql"
	"errors"
	"fmt"

	"advisorchat/models"

	_ "github.com/lib/pq"
)

// ErrStudentNotFound is returned when no profile exists for a phone number.
var ErrStudentNotFound = errors.New("student profile not found")

type StudentRepository interface {
	FindByPhone(phone string) (*models.StudentProfile, error)
	GetAllStudents() ([]*models.StudentProfile, error)
}

type PostgresStudentRepository struct {
	db *sql.DB
}

func NewPostgresStudentRepository(databaseURL string) (*PostgresStudentRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStudentRepository{db: db}, nil
}

func (r *PostgresStudentRepository) FindByPhone(phone string) (*models.StudentProfile, error) {
	query := `
		SELECT phone, name, career, status
		FROM advisor.students
		WHERE phone = $1`

	student := &models.StudentProfile{}
	row := r.db.QueryRow(query, phone)

	err := row.Scan(&student.Phone, &student.Name, &student.Career, &student.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to find student: %w", err)
	}

	payments, err := r.getPayments(student.Phone)
	if err != nil {
		return nil, err
	}
	student.Payments = payments

	return student, nil
}

func (r *PostgresStudentRepository) GetAllStudents() ([]*models.StudentProfile, error) {
	query := `
		SELECT phone, name, career, status
		FROM advisor.students
		ORDER BY name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	defer rows.Close()

	var students []*models.StudentProfile
	for rows.Next() {
		student := &models.StudentProfile{}
		if err := rows.Scan(&student.Phone, &student.Name, &student.Career, &student.Status); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}

	for _, student := range students {
		payments, err := r.getPayments(student.Phone)
		if err != nil {
			return nil, err
		}
		student.Payments = payments
	}

	return students, nil
}

func (r *PostgresStudentRepository) getPayments(phone string) ([]models.PaymentQuota, error) {
	query := `
		SELECT sequence, amount, status, due_date
		FROM advisor.payment_quotas
		WHERE student_phone = $1
		ORDER BY sequence`

	rows, err := r.db.Query(query, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment quotas: %w", err)
	}
	defer rows.Close()

	var payments []models.PaymentQuota
	for rows.Next() {
		var quota models.PaymentQuota
		if err := rows.Scan(&quota.Sequence, &quota.Amount, &quota.Status, &quota.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan payment quota: %w", err)
		}
		payments = append(payments, quota)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payment quotas: %w", err)
	}

	return payments, nil
}

func (r *PostgresStudentRepository) Close() error {
	return r.db.Close()
}
