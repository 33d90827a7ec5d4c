package domain

// CatalogEntry is a single creature record supplied by the catalog source
type CatalogEntry struct {
	ID   int
	Name string
}

// Slot is one fixed position in the den
type Slot struct {
	Index    int
	ID       string // selected identifier, "" when empty
	Occupied bool
}

// CatalogStatus represents the lifecycle of the one catalog fetch
type CatalogStatus int

const (
	CatalogLoading CatalogStatus = iota
	CatalogReady
	CatalogFailed
)

func (s CatalogStatus) String() string {
	switch s {
	case CatalogLoading:
		return "loading"
	case CatalogReady:
		return "ready"
	case CatalogFailed:
		return "failed"
	default:
		return "unknown"
	}
}
