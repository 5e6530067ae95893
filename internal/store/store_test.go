package store_test

import (
	"reflect"
	"testing"

	"github.com/deidaraiorek/launchboard/internal/model"
	"github.com/deidaraiorek/launchboard/internal/store"
)

func TestNewIndexesByID(t *testing.T) {
	rockets := []model.Rocket{
		{ID: "r1", Name: "Falcon 1"},
		{ID: "r2", Name: "Falcon 9"},
	}
	pads := []model.Launchpad{
		{ID: "p1", FullName: "Kwajalein Atoll", Region: "Marshall Islands"},
		{ID: "p2", FullName: "Cape Canaveral", Region: "Florida"},
	}

	s := store.New(nil, rockets, pads)

	r, ok := s.Rocket("r2")
	if !ok {
		t.Fatal("Expected rocket r2 to be found")
	}
	if r.Name != "Falcon 9" {
		t.Errorf("Expected Falcon 9, got %q", r.Name)
	}

	lp, ok := s.Launchpad("p1")
	if !ok {
		t.Fatal("Expected launchpad p1 to be found")
	}
	if lp.Region != "Marshall Islands" {
		t.Errorf("Expected Marshall Islands, got %q", lp.Region)
	}
}

func TestLookupMissingID(t *testing.T) {
	s := store.New(nil, []model.Rocket{{ID: "r1"}}, nil)

	if _, ok := s.Rocket("nope"); ok {
		t.Error("Expected missing rocket to report not found")
	}
	if _, ok := s.Launchpad("nope"); ok {
		t.Error("Expected missing launchpad to report not found")
	}
}

func TestRecordsWithoutIDAreNotIndexed(t *testing.T) {
	s := store.New(nil, []model.Rocket{{Name: "Ghost"}}, []model.Launchpad{{Region: "Nowhere"}})

	if _, ok := s.Rocket(""); ok {
		t.Error("Expected rocket with empty id to be skipped")
	}
	if _, ok := s.Launchpad(""); ok {
		t.Error("Expected launchpad with empty id to be skipped")
	}
	if got := s.Counts(); got.Rockets != 1 || got.Launchpads != 1 {
		t.Errorf("Expected collections to keep unindexed records, got %+v", got)
	}
	if regions := s.Regions(); len(regions) != 0 {
		t.Errorf("Expected no regions from unindexed pads, got %v", regions)
	}
}

func TestDuplicateIDLastWriteWins(t *testing.T) {
	s := store.New(nil, []model.Rocket{
		{ID: "r1", Name: "first"},
		{ID: "r1", Name: "second"},
	}, nil)

	r, _ := s.Rocket("r1")
	if r.Name != "second" {
		t.Errorf("Expected last write to win, got %q", r.Name)
	}
}

func TestRegions(t *testing.T) {
	s := store.New(nil, nil, []model.Launchpad{
		{ID: "p1", Region: "Florida"},
		{ID: "p2", Region: "California"},
		{ID: "p3", Region: "Florida"},
		{ID: "p4", Region: ""},
	})

	expected := []string{"California", "Florida"}
	if got := s.Regions(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestLaunchesKeepSourceOrder(t *testing.T) {
	launches := []model.Launch{{ID: "c"}, {ID: "a"}, {ID: "b"}}
	s := store.New(launches, nil, nil)

	got := s.Launches()
	if len(got) != 3 || got[0].ID != "c" || got[1].ID != "a" || got[2].ID != "b" {
		t.Errorf("Expected source order c,a,b, got %+v", got)
	}
}
