package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"alfredoptarigan/talent-pipeline/internal/config"
	"alfredoptarigan/talent-pipeline/internal/models"
)

type seedFile struct {
	Flows []struct {
		ID          int    `yaml:"id"`
		Description string `yaml:"description"`
		Steps       []struct {
			ID    int    `yaml:"id"`
			Name  string `yaml:"name"`
			Order int    `yaml:"order"`
		} `yaml:"steps"`
	} `yaml:"flows"`

	Positions []struct {
		ID    int    `yaml:"id"`
		Title string `yaml:"title"`
		Flow  int    `yaml:"flow"`
	} `yaml:"positions"`

	Candidates []struct {
		ID        int    `yaml:"id"`
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Email     string `yaml:"email"`
	} `yaml:"candidates"`

	Applications []struct {
		ID         int `yaml:"id"`
		Candidate  int `yaml:"candidate"`
		Position   int `yaml:"position"`
		Step       int `yaml:"step"`
		Interviews []struct {
			Step     int       `yaml:"step"`
			Employee *int      `yaml:"employee"`
			Date     time.Time `yaml:"date"`
			Score    *float64  `yaml:"score"`
			Notes    *string   `yaml:"notes"`
		} `yaml:"interviews"`
	} `yaml:"applications"`
}

func main() {
	file := flag.String("file", "./scripts/fixtures/pipeline.yaml", "YAML fixture to load")
	flag.Parse()

	log.Println("🚀 Starting pipeline seeding...")

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("❌ Failed to read fixture: %v", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("❌ Failed to parse fixture: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	counts := map[string]int{}
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, f := range seed.Flows {
			if err := tx.Create(&models.InterviewFlow{ID: f.ID, Description: f.Description}).Error; err != nil {
				return fmt.Errorf("flow %d: %w", f.ID, err)
			}
			counts["flows"]++
			for _, s := range f.Steps {
				step := models.InterviewStep{ID: s.ID, InterviewFlowID: f.ID, Name: s.Name, OrderIndex: s.Order}
				if err := tx.Create(&step).Error; err != nil {
					return fmt.Errorf("step %d: %w", s.ID, err)
				}
				counts["steps"]++
			}
		}

		for _, p := range seed.Positions {
			if err := tx.Create(&models.Position{ID: p.ID, Title: p.Title, InterviewFlowID: p.Flow}).Error; err != nil {
				return fmt.Errorf("position %d: %w", p.ID, err)
			}
			counts["positions"]++
		}

		for _, c := range seed.Candidates {
			candidate := models.Candidate{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email}
			if err := tx.Create(&candidate).Error; err != nil {
				return fmt.Errorf("candidate %d: %w", c.ID, err)
			}
			counts["candidates"]++
		}

		for _, a := range seed.Applications {
			app := models.Application{
				ID:                   a.ID,
				CandidateID:          a.Candidate,
				PositionID:           a.Position,
				CurrentInterviewStep: a.Step,
			}
			if err := tx.Create(&app).Error; err != nil {
				return fmt.Errorf("application %d: %w", a.ID, err)
			}
			counts["applications"]++

			for _, iv := range a.Interviews {
				interview := models.Interview{
					ApplicationID:   a.ID,
					InterviewStepID: iv.Step,
					EmployeeID:      iv.Employee,
					InterviewDate:   iv.Date,
					Score:           iv.Score,
					Notes:           iv.Notes,
				}
				if err := tx.Create(&interview).Error; err != nil {
					return fmt.Errorf("interview for application %d: %w", a.ID, err)
				}
				counts["interviews"]++
			}
		}

		return nil
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed, nothing was written: %v", err)
	}

	// Summary
	log.Println(strings.Repeat("=", 60))
	log.Printf("📊 Seeding Summary:")
	for _, kind := range []string{"flows", "steps", "positions", "candidates", "applications", "interviews"} {
		log.Printf("   ✅ %-12s %d", kind, counts[kind])
	}
	log.Println(strings.Repeat("=", 60))
}
