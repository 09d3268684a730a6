package usecase

import (
	"context"
	"errors"

	"go-hospital-management/internal/converter"
	"go-hospital-management/internal/delivery/dto"
	"go-hospital-management/internal/domain/entity"
	"go-hospital-management/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDepartmentAlreadyExists = errors.New("department already exists")

type DepartmentUsecase interface {
	CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int) (*dto.DepartmentResponse, error)
	ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
}

func NewDepartmentUsecase(db *gorm.DB, log *logrus.Logger, departmentRepo repository.DepartmentRepository) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
	}
}

func (u *departmentUsecase) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	department := &entity.Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := u.departmentRepo.Create(u.db.WithContext(ctx), department); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDepartmentAlreadyExists
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) GetDepartment(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	responses := converter.DepartmentsToResponses(departments)
	return &dto.DepartmentListResponse{
		Departments: responses,
		Total:       len(responses),
	}, nil
}
