package repository

import (
	"bizhub-backend/internal/models"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id uint) error
	GetByID(id uint) (*models.Employee, error)
	GetByCompany(companyID uint) ([]models.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepository) Update(employee *models.Employee) error {
	return r.db.Save(employee).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Employee{}, id).Error
}

func (r *employeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByCompany(companyID uint) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Where("company_id = ?", companyID).
		Order("employees.name ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

type TaskRepository interface {
	Create(task *models.Task) error
	Update(task *models.Task) error
	Delete(id uint) error
	GetByID(id uint) (*models.Task, error)
	GetByCompany(companyID uint) ([]models.Task, error)
	GetByEmployee(employeeID uint) ([]models.Task, error)
	GetPendingByCompany(companyID uint) ([]models.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *taskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

func (r *taskRepository) Delete(id uint) error {
	return r.db.Delete(&models.Task{}, id).Error
}

func (r *taskRepository) GetByID(id uint) (*models.Task, error) {
	var task models.Task
	if err := r.db.Preload("Employee").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByCompany(companyID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Employee").
		Where("company_id = ?", companyID).
		Order("tasks.due_at ASC NULLS LAST, tasks.created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetByEmployee(employeeID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Where("employee_id = ?", employeeID).
		Order("tasks.due_at ASC NULLS LAST, tasks.created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetPendingByCompany(companyID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.Preload("Employee").
		Where("company_id = ? AND status = ?", companyID, models.TaskStatusPending).
		Order("tasks.due_at ASC NULLS LAST").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}
