package model

// Domain is the name of a data domain, it selects the stage implementations and the
// configuration scope that applies on top of the global one.
type Domain string

const (
	// DomainMeshblocks is the meshblock geometries domain.
	DomainMeshblocks Domain = "meshblocks"
)

// String returns the string representation of the Domain.
func (d Domain) String() string {
	return string(d)
}

// StageKind is the kind of a stage within a domain.
type StageKind string

const (
	// StageRaw acquires the geometries into the raw working directory.
	StageRaw StageKind = "raw"
	// StageProcessed reads the geometries and persists the adjacency matrix.
	StageProcessed StageKind = "processed"
)

// String returns the string representation of the StageKind.
func (k StageKind) String() string {
	return string(k)
}

// State is the lifecycle state of a pipeline.
type State string

const (
	StateIdle    State = "idle"
	StateBuilt   State = "built"
	StateRunning State = "running"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// StageInfo describes a built stage.
type StageInfo struct {
	Domain Domain
	Kind   StageKind
	Name   string
	// Params lists the configuration names resolved for the stage, sorted.
	Params []string
}

var (
	StartStage = &StageInfo{Name: "start"}
	EndStage   = &StageInfo{Name: "end"}
)

// StageName returns the display name of a stage.
func StageName(domain Domain, kind StageKind) string {
	return domain.String() + "/" + kind.String()
}
