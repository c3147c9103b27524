package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bizhub-backend/internal/models"
	"bizhub-backend/internal/service"
)

type EmployeeHandler struct {
	employeeService *service.EmployeeService
}

func NewEmployeeHandler(employeeService *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var employee models.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee.CompanyID = companyID(c)
	if err := h.employeeService.Create(&employee); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"employee": employee})
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.GetByCompany(companyID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	employee, ok := h.loadEmployee(c)
	if !ok {
		return
	}

	var req models.Employee
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee.Name = req.Name
	employee.Document = req.Document
	employee.Role = req.Role
	employee.Email = req.Email
	employee.Phone = req.Phone
	employee.Active = req.Active

	if err := h.employeeService.Update(employee); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	employee, ok := h.loadEmployee(c)
	if !ok {
		return
	}

	if err := h.employeeService.Delete(employee.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "employee deleted successfully"})
}

func (h *EmployeeHandler) CreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task.CompanyID = companyID(c)
	if err := h.employeeService.CreateTask(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"task": task})
}

func (h *EmployeeHandler) ListTasks(c *gin.Context) {
	var (
		tasks []models.Task
		err   error
	)

	if c.Query("pending") == "true" {
		tasks, err = h.employeeService.GetPendingTasks(companyID(c))
	} else {
		tasks, err = h.employeeService.GetTasksByCompany(companyID(c))
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (h *EmployeeHandler) CompleteTask(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	completed, err := h.employeeService.CompleteTask(task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": completed})
}

func (h *EmployeeHandler) DeleteTask(c *gin.Context) {
	task, ok := h.loadTask(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteTask(task.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted successfully"})
}

func (h *EmployeeHandler) loadEmployee(c *gin.Context) (*models.Employee, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return nil, false
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return nil, false
	}
	if employee.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "employee belongs to another company"})
		return nil, false
	}

	return employee, true
}

func (h *EmployeeHandler) loadTask(c *gin.Context) (*models.Task, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return nil, false
	}

	task, err := h.employeeService.GetTask(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return nil, false
	}
	if task.CompanyID != companyID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "task belongs to another company"})
		return nil, false
	}

	return task, true
}
