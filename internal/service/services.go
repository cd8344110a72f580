package service

import (
	"github.com/MKhiriev/go-student-desk/internal/config"
	"github.com/MKhiriev/go-student-desk/internal/logger"
	"github.com/MKhiriev/go-student-desk/internal/store"
)

type Services struct {
	AuthService     AuthService
	RegistryService RegistryService
	RecordsService  RecordsService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.AdminRepository, storages.StudentRepository, cfg.Auth, logger),
		RegistryService: NewRegistryService(storages.StudentRepository, storages.CourseRepository, storages.EnrollmentRepository, logger),
		RecordsService:  NewRecordsService(storages.GradeRepository, storages.AttendanceRepository, logger),
	}
}
