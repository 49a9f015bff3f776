package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/persistence"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/recordyaml"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/infrastructure/database"
)

func registerTaskPersistenceSteps(ctx *godog.ScenarioContext, ic *industryContext) {
	// Background
	ctx.Step(`^a task store backed by a database$`, ic.aTaskStoreBackedByADatabase)

	// Given
	ctx.Step(`^the task document:$`, ic.theTaskDocument)

	// When
	ctx.Step(`^I decode the task$`, ic.iDecodeTheTask)
	ctx.Step(`^I store the task as "([^"]*)"$`, ic.iStoreTheTaskAs)
	ctx.Step(`^I restore the stored task$`, ic.iRestoreTheStoredTask)

	// Then
	ctx.Step(`^decoding should succeed$`, ic.decodingShouldSucceed)
	ctx.Step(`^decoding should fail with a task load error$`, ic.decodingShouldFailWithATaskLoadError)
	ctx.Step(`^the stored tasks should be "([^"]*)"$`, ic.theStoredTasksShouldBe)
}

func (ic *industryContext) aTaskStoreBackedByADatabase() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return err
	}
	ic.db = db
	return nil
}

func (ic *industryContext) closeDatabase() error {
	if ic.db == nil {
		return nil
	}
	err := database.Close(ic.db)
	ic.db = nil
	return err
}

// taskService builds the service lazily so catalog steps can run first
func (ic *industryContext) taskService() *services.TaskService {
	if ic.service == nil {
		var docs industry.DocumentRepository
		if ic.db != nil {
			docs = persistence.NewGormTaskDocumentRepository(ic.db)
		}
		ic.service = services.NewTaskService(ic.provider, recordyaml.Codec{}, docs)
	}
	return ic.service
}

func (ic *industryContext) theTaskDocument(doc *godog.DocString) error {
	ic.document = []byte(doc.Content + "\n")
	return nil
}

func (ic *industryContext) iDecodeTheTask() error {
	ic.task, ic.err = ic.taskService().Decode(context.Background(), ic.document)
	return nil
}

func (ic *industryContext) iStoreTheTaskAs(name string) error {
	svc := ic.taskService()
	task, err := svc.Decode(context.Background(), ic.document)
	if err != nil {
		return fmt.Errorf("failed to decode task document: %w", err)
	}
	doc, err := svc.Store(context.Background(), name, task)
	if err != nil {
		return err
	}
	ic.storedID = doc.ID
	return nil
}

func (ic *industryContext) iRestoreTheStoredTask() error {
	if ic.storedID == "" {
		return fmt.Errorf("no task stored")
	}
	task, _, err := ic.taskService().Restore(context.Background(), ic.storedID)
	if err != nil {
		return err
	}
	ic.task = task
	return nil
}

func (ic *industryContext) decodingShouldSucceed() error {
	if ic.err != nil {
		return fmt.Errorf("expected decoding to succeed, got %w", ic.err)
	}
	if ic.task == nil {
		return fmt.Errorf("expected a task")
	}
	return nil
}

func (ic *industryContext) decodingShouldFailWithATaskLoadError() error {
	if ic.err == nil {
		return fmt.Errorf("expected decoding to fail")
	}
	if !industry.IsTaskLoad(ic.err) {
		return fmt.Errorf("expected a task load error, got %v", ic.err)
	}
	if ic.task != nil {
		return fmt.Errorf("expected no task alongside the error")
	}
	return nil
}

func (ic *industryContext) theStoredTasksShouldBe(names string) error {
	docs, err := ic.taskService().List(context.Background())
	if err != nil {
		return err
	}
	got := make([]string, 0, len(docs))
	for _, doc := range docs {
		got = append(got, doc.Name)
	}
	if strings.Join(got, ", ") != names {
		return fmt.Errorf("expected stored tasks %q, got %q", names, strings.Join(got, ", "))
	}
	return nil
}
