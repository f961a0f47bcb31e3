package trace

import (
	"testing"
)

func TestSimulationTrace_Record_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for decisions
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN a claim record is recorded
	st.Record(EventRecord{Tick: 3, Kind: EventClaim, ActionID: 7, Job: "J1", Operation: "O1", Machine: "M1", Holder: -1})

	// THEN the trace contains one record with correct data
	records := st.Records()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ActionID != 7 || records[0].Kind != EventClaim {
		t.Errorf("unexpected record %+v", records[0])
	}
}

func TestSimulationTrace_LevelNone_RecordsNothing(t *testing.T) {
	// GIVEN a trace with tracing disabled
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelNone})

	// WHEN a record is offered
	st.Record(EventRecord{Tick: 0, Kind: EventClaim})

	// THEN nothing is retained
	if st.Len() != 0 {
		t.Errorf("expected 0 records, got %d", st.Len())
	}
}

func TestSimulationTrace_Nil_IsSafe(t *testing.T) {
	var st *SimulationTrace
	st.Record(EventRecord{Kind: EventClaim})
	st.Reset()
	if st.Enabled() || st.Len() != 0 || st.Records() != nil {
		t.Error("nil trace must behave as disabled and empty")
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})

	// WHEN multiple records are added
	st.Record(EventRecord{Tick: 0, Kind: EventClaim, ActionID: 0})
	st.Record(EventRecord{Tick: 0, Kind: EventCollision, ActionID: 1})
	st.Record(EventRecord{Tick: 3, Kind: EventCompletion, ActionID: 0})

	// THEN order is preserved
	records := st.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []EventKind{EventClaim, EventCollision, EventCompletion} {
		if records[i].Kind != want {
			t.Errorf("record %d: got kind %s, want %s", i, records[i].Kind, want)
		}
	}
}

func TestSimulationTrace_MaxRecords_DropsOldest(t *testing.T) {
	// GIVEN a trace bounded to two records
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions, MaxRecords: 2})

	// WHEN four records are added
	for tick := 0; tick < 4; tick++ {
		st.Record(EventRecord{Tick: tick, Kind: EventClaim})
	}

	// THEN only the newest two remain and the evictions are counted
	records := st.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Tick != 2 || records[1].Tick != 3 {
		t.Errorf("expected ticks [2 3], got [%d %d]", records[0].Tick, records[1].Tick)
	}
	if st.Dropped != 2 {
		t.Errorf("expected 2 dropped, got %d", st.Dropped)
	}
}

func TestSimulationTrace_Reset_ClearsRecords(t *testing.T) {
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions, MaxRecords: 1})
	st.Record(EventRecord{Tick: 0, Kind: EventClaim})
	st.Record(EventRecord{Tick: 1, Kind: EventClaim})

	st.Reset()

	if st.Len() != 0 || st.Dropped != 0 {
		t.Errorf("expected empty trace after reset, got len=%d dropped=%d", st.Len(), st.Dropped)
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"decisions", true},
		{"", true}, // empty defaults to none
		{"detailed", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}
