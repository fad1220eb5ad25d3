package main

import (
	"context"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/catalog"
	"medibook-service/internal/app/services/physicians"
	"medibook-service/internal/pkg/constvars"
	"time"
)

// Seeds the physician roster and the service catalog. Both are
// read-only from the API, so they only exist if this command ran.
// Running it twice is a no-op, collections that already hold
// documents are skipped.
func main() {
	driverConfig := config.NewDriverConfig()

	mongoClient := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	physicianRepository := physicians.NewPhysicianMongoRepository(mongoClient, driverConfig.MongoDB.DbName)
	serviceRepository := catalog.NewServiceMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	seedPhysicians(ctx, physicianRepository)
	seedServices(ctx, serviceRepository)
}

func seedPhysicians(ctx context.Context, repository physicians.PhysicianRepository) {
	count, err := repository.CountAll(ctx)
	if err != nil {
		log.Fatalf("Error counting physicians: %v", err)
	}
	if count > 0 {
		log.Printf("Physicians collection already has %d documents, skipping", count)
		return
	}

	weekdays := weekdaySchedule("09:00", "17:00")
	seeds := []*models.Physician{
		{
			Name:           "Dr. Amanda Kusuma",
			Specialization: "General Practitioner",
			Qualification:  "MBBS",
			Experience:     8,
			ConsultingFee:  150000,
			Clinics: []models.Clinic{
				{ClinicName: "MediBook Central", Address: "Jl. Sudirman 12", City: "Jakarta", WorkingDays: weekdays[:5]},
			},
			Email:        "amanda.kusuma@medibook.example",
			MobileNumber: "9811123001",
		},
		{
			Name:           "Dr. Budi Santoso",
			Specialization: "Cardiologist",
			Qualification:  "MD, FACC",
			Experience:     15,
			ConsultingFee:  400000,
			Clinics: []models.Clinic{
				{ClinicName: "Heart Care Clinic", Address: "Jl. Thamrin 8", City: "Jakarta", WorkingDays: weekdays[:3]},
				{ClinicName: "MediBook Central", Address: "Jl. Sudirman 12", City: "Jakarta", WorkingDays: weekdays[3:5]},
			},
			Email:        "budi.santoso@medibook.example",
			MobileNumber: "9811123002",
		},
		{
			Name:           "Dr. Clara Wijaya",
			Specialization: "Dermatologist",
			Qualification:  "MD",
			Experience:     6,
			ConsultingFee:  250000,
			Clinics: []models.Clinic{
				{ClinicName: "Skin Health Center", Address: "Jl. Asia Afrika 45", City: "Bandung", WorkingDays: weekdays[1:6]},
			},
			Email:        "clara.wijaya@medibook.example",
			MobileNumber: "9811123003",
		},
		{
			Name:           "Dr. Dimas Pratama",
			Specialization: "Pediatrician",
			Qualification:  "MD, MPH",
			Experience:     11,
			ConsultingFee:  300000,
			Clinics: []models.Clinic{
				{ClinicName: "MediBook Kids", Address: "Jl. Diponegoro 3", City: "Surabaya", WorkingDays: weekdays[:6]},
			},
			Email:        "dimas.pratama@medibook.example",
			MobileNumber: "9811123004",
		},
	}

	for _, physician := range seeds {
		physician.CreatedAt = time.Now()
		physician.UpdatedAt = time.Now()
		if _, err := repository.CreatePhysician(ctx, physician); err != nil {
			log.Fatalf("Error seeding physician %s: %v", physician.Name, err)
		}
	}
	log.Printf("Seeded %d physicians", len(seeds))
}

func seedServices(ctx context.Context, repository catalog.ServiceRepository) {
	count, err := repository.CountAll(ctx)
	if err != nil {
		log.Fatalf("Error counting services: %v", err)
	}
	if count > 0 {
		log.Printf("Services collection already has %d documents, skipping", count)
		return
	}

	seeds := []*models.Service{
		{
			Name:        "General Consultation",
			Category:    constvars.ServiceCategories[0],
			Description: "Walk-in consultation with a general practitioner",
			Price:       150000,
			DurationMin: 30,
		},
		{
			Name:        "Cardiology Consultation",
			Category:    constvars.ServiceCategories[1],
			Description: "Consultation with a cardiologist",
			Price:       400000,
			DurationMin: 45,
		},
		{
			Name:        "Full Blood Panel",
			Category:    constvars.ServiceCategories[2],
			Description: "Complete blood count with standard markers",
			Price:       275000,
			DurationMin: 15,
		},
		{
			Name:        "Physiotherapy Session",
			Category:    constvars.ServiceCategories[3],
			Description: "One-on-one physiotherapy session",
			Price:       200000,
			DurationMin: 60,
		},
	}

	for _, service := range seeds {
		service.CreatedAt = time.Now()
		service.UpdatedAt = time.Now()
		if _, err := repository.CreateService(ctx, service); err != nil {
			log.Fatalf("Error seeding service %s: %v", service.Name, err)
		}
	}
	log.Printf("Seeded %d services", len(seeds))
}

func weekdaySchedule(startTime, endTime string) []models.WorkingDay {
	days := make([]models.WorkingDay, 0, len(constvars.PhysicianWorkingDayNames))
	for _, day := range constvars.PhysicianWorkingDayNames {
		days = append(days, models.WorkingDay{
			Day:       day,
			StartTime: startTime,
			EndTime:   endTime,
		})
	}
	return days
}
