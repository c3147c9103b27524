package service

import (
	"errors"
	"fmt"
	"strings"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/repository"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// EmployeeService manages the staff roster and their assigned tasks.
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	taskRepo     repository.TaskRepository
}

func NewEmployeeService(employeeRepo repository.EmployeeRepository, taskRepo repository.TaskRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, taskRepo: taskRepo}
}

func (s *EmployeeService) Create(employee *models.Employee) error {
	if strings.TrimSpace(employee.Name) == "" {
		return errors.New("employee name is required")
	}

	employee.Active = true
	if err := s.employeeRepo.Create(employee); err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) Update(employee *models.Employee) error {
	if err := s.employeeRepo.Update(employee); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (s *EmployeeService) Delete(id uint) error {
	if _, err := s.employeeRepo.GetByID(id); err != nil {
		return ErrEmployeeNotFound
	}
	return s.employeeRepo.Delete(id)
}

func (s *EmployeeService) GetByID(id uint) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *EmployeeService) GetByCompany(companyID uint) ([]models.Employee, error) {
	return s.employeeRepo.GetByCompany(companyID)
}

func (s *EmployeeService) CreateTask(task *models.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return errors.New("task title is required")
	}

	if task.EmployeeID != nil {
		if _, err := s.employeeRepo.GetByID(*task.EmployeeID); err != nil {
			return ErrEmployeeNotFound
		}
	}

	task.Status = models.TaskStatusPending
	if err := s.taskRepo.Create(task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (s *EmployeeService) UpdateTask(task *models.Task) error {
	if err := s.taskRepo.Update(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}

func (s *EmployeeService) CompleteTask(id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}

	task.Status = models.TaskStatusDone
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return task, nil
}

func (s *EmployeeService) DeleteTask(id uint) error {
	if _, err := s.taskRepo.GetByID(id); err != nil {
		return ErrTaskNotFound
	}
	return s.taskRepo.Delete(id)
}

func (s *EmployeeService) GetTask(id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *EmployeeService) GetTasksByCompany(companyID uint) ([]models.Task, error) {
	return s.taskRepo.GetByCompany(companyID)
}

func (s *EmployeeService) GetPendingTasks(companyID uint) ([]models.Task, error) {
	return s.taskRepo.GetPendingByCompany(companyID)
}
