package repository_test

import (
	"context"
	"testing"

	"github.com/msomdec/edutrack/internal/domain"
	"github.com/msomdec/edutrack/internal/repository"
	"github.com/msomdec/edutrack/internal/store/memory"
)

func seedClass(t *testing.T, p *repository.Partition[domain.ClassEntry], userID, subject, day, start string) domain.ClassEntry {
	t.Helper()
	stored, err := p.Add(context.Background(), userID, domain.ClassEntry{
		Day:       day,
		StartTime: start,
		Subject:   subject,
	})
	if err != nil {
		t.Fatalf("seed class %q: %v", subject, err)
	}
	return stored
}

func TestPartition_AddAssignsIDAndKeepsOrder(t *testing.T) {
	p := repository.NewClassPartition(memory.New())
	ctx := context.Background()

	first := seedClass(t, p, "u1", "Math", "Monday", "09:00")
	second := seedClass(t, p, "u1", "History", "Tuesday", "10:00")

	if first.ID == "" || second.ID == "" {
		t.Fatal("expected ids to be assigned")
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both were %q", first.ID)
	}

	list, err := p.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].Subject != "Math" || list[1].Subject != "History" {
		t.Fatalf("expected insertion order, got %v", list)
	}
}

func TestPartition_ListAbsentUserIsEmpty(t *testing.T) {
	p := repository.NewClassPartition(memory.New())

	list, err := p.List(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestPartition_UpdateAppliesFunc(t *testing.T) {
	p := repository.NewClassPartition(memory.New())
	ctx := context.Background()

	stored := seedClass(t, p, "u1", "Math", "Monday", "09:00")

	room := "B12"
	patch := domain.ClassPatch{Room: &room}
	if err := p.Update(ctx, "u1", stored.ID, patch.Apply); err != nil {
		t.Fatalf("Update: %v", err)
	}

	list, err := p.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list[0].Room != "B12" {
		t.Fatalf("expected room to be patched, got %q", list[0].Room)
	}
	if list[0].Subject != "Math" || list[0].Day != "Monday" {
		t.Fatalf("expected untouched fields to survive, got %+v", list[0])
	}
}

func TestPartition_UpdateUnknownIDIsNoOp(t *testing.T) {
	p := repository.NewClassPartition(memory.New())
	ctx := context.Background()

	seedClass(t, p, "u1", "Math", "Monday", "09:00")

	subject := "Physics"
	patch := domain.ClassPatch{Subject: &subject}
	if err := p.Update(ctx, "u1", "no-such-id", patch.Apply); err != nil {
		t.Fatalf("Update unknown id: %v", err)
	}

	list, _ := p.List(ctx, "u1")
	if list[0].Subject != "Math" {
		t.Fatalf("expected entry unchanged, got %+v", list[0])
	}
}

func TestPartition_DeleteIsIdempotent(t *testing.T) {
	p := repository.NewClassPartition(memory.New())
	ctx := context.Background()

	stored := seedClass(t, p, "u1", "Math", "Monday", "09:00")

	if err := p.Delete(ctx, "u1", stored.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if err := p.Delete(ctx, "u1", stored.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}

	list, _ := p.List(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}
}

func TestPartition_DeleteAllThenAddRecreatesList(t *testing.T) {
	p := repository.NewClassPartition(memory.New())
	ctx := context.Background()

	seedClass(t, p, "u1", "Math", "Monday", "09:00")
	seedClass(t, p, "u1", "History", "Tuesday", "10:00")

	if err := p.DeleteAll(ctx, "u1"); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	list, _ := p.List(ctx, "u1")
	if len(list) != 0 {
		t.Fatalf("expected empty list after DeleteAll, got %v", list)
	}

	seedClass(t, p, "u1", "Biology", "Friday", "08:00")
	list, _ = p.List(ctx, "u1")
	if len(list) != 1 || list[0].Subject != "Biology" {
		t.Fatalf("expected fresh single-entry list, got %v", list)
	}
}

func TestPartition_UsersAreIsolated(t *testing.T) {
	p := repository.NewClassPartition(memory.New())
	ctx := context.Background()

	seedClass(t, p, "alice", "Math", "Monday", "09:00")
	bobsEntry := seedClass(t, p, "bob", "Art", "Tuesday", "11:00")

	if err := p.DeleteAll(ctx, "alice"); err != nil {
		t.Fatalf("DeleteAll alice: %v", err)
	}

	bobs, err := p.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List bob: %v", err)
	}
	if len(bobs) != 1 || bobs[0].ID != bobsEntry.ID {
		t.Fatalf("expected bob's list untouched, got %v", bobs)
	}
}

func TestPartition_InitKeepsExistingList(t *testing.T) {
	p := repository.NewAssignmentPartition(memory.New())
	ctx := context.Background()

	if err := p.Init(ctx, "u1"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	stored, err := p.Add(ctx, "u1", domain.AssignmentEntry{Title: "Essay"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := p.Init(ctx, "u1"); err != nil {
		t.Fatalf("re-Init: %v", err)
	}

	list, _ := p.List(ctx, "u1")
	if len(list) != 1 || list[0].ID != stored.ID {
		t.Fatalf("expected re-Init to keep the existing list, got %v", list)
	}
}

func TestPartition_SurvivesCorruptRecord(t *testing.T) {
	st := memory.New()
	st.SeedRaw("edutrack_classes_map", []byte("][ definitely not json"))
	p := repository.NewClassPartition(st)
	ctx := context.Background()

	list, err := p.List(ctx, "u1")
	if err != nil {
		t.Fatalf("List over corrupt record: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}

	seedClass(t, p, "u1", "Math", "Monday", "09:00")
	list, _ = p.List(ctx, "u1")
	if len(list) != 1 {
		t.Fatalf("expected write to recover the record, got %v", list)
	}
}
