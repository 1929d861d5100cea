package garden

import "fmt"

// Category names one append-only sequence of the garden document
type Category string

const (
	CategoryPlants          Category = "plants"
	CategoryPlantingRecords Category = "planting_records"
	CategoryHarvestRecords  Category = "harvest_records"
	CategoryPlantingPlans   Category = "planting_plans"
)

// Categories returns every category in document order
func Categories() []Category {
	return []Category{
		CategoryPlants,
		CategoryPlantingRecords,
		CategoryHarvestRecords,
		CategoryPlantingPlans,
	}
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// IsValid validates the category
func (c Category) IsValid() bool {
	switch c {
	case CategoryPlants, CategoryPlantingRecords, CategoryHarvestRecords, CategoryPlantingPlans:
		return true
	default:
		return false
	}
}

// Document is the whole persisted garden state of one entry
type Document struct {
	Plants          []Record `json:"plants"`
	PlantingRecords []Record `json:"planting_records"`
	HarvestRecords  []Record `json:"harvest_records"`
	PlantingPlans   []Record `json:"planting_plans"`
}

// NewDocument creates a document with four empty sequences
func NewDocument() *Document {
	d := &Document{}
	d.FillMissing()
	return d
}

// FillMissing replaces nil sequences with empty ones.
// Snapshots written before a category existed decode with nil slices.
func (d *Document) FillMissing() {
	if d.Plants == nil {
		d.Plants = []Record{}
	}
	if d.PlantingRecords == nil {
		d.PlantingRecords = []Record{}
	}
	if d.HarvestRecords == nil {
		d.HarvestRecords = []Record{}
	}
	if d.PlantingPlans == nil {
		d.PlantingPlans = []Record{}
	}
}

// Sequence returns the records of category c
func (d *Document) Sequence(c Category) []Record {
	switch c {
	case CategoryPlants:
		return d.Plants
	case CategoryPlantingRecords:
		return d.PlantingRecords
	case CategoryHarvestRecords:
		return d.HarvestRecords
	case CategoryPlantingPlans:
		return d.PlantingPlans
	default:
		return nil
	}
}

// Append adds r to the end of category c
func (d *Document) Append(c Category, r Record) error {
	switch c {
	case CategoryPlants:
		d.Plants = append(d.Plants, r)
	case CategoryPlantingRecords:
		d.PlantingRecords = append(d.PlantingRecords, r)
	case CategoryHarvestRecords:
		d.HarvestRecords = append(d.HarvestRecords, r)
	case CategoryPlantingPlans:
		d.PlantingPlans = append(d.PlantingPlans, r)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return nil
}

// Len returns the total number of records across all categories
func (d *Document) Len() int {
	return len(d.Plants) + len(d.PlantingRecords) + len(d.HarvestRecords) + len(d.PlantingPlans)
}
