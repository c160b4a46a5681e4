package system

import "fmt"

// Status is a transient system condition that moves commodity prices
type Status int

const (
	Uneventful Status = iota
	War
	Plague
	Drought
	Boredom
	Cold
	CropFailure
	LackOfWorkers
)

// MaxStatus is the number of status values including Uneventful
const MaxStatus = 8

var statusNames = [MaxStatus]string{
	"Uneventful", "War", "Plague", "Drought", "Boredom", "Cold", "Crop Failure", "Lack of Workers",
}

var statusKeys = map[string]Status{
	"uneventful":      Uneventful,
	"war":             War,
	"plague":          Plague,
	"drought":         Drought,
	"boredom":         Boredom,
	"cold":            Cold,
	"crop_failure":    CropFailure,
	"lack_of_workers": LackOfWorkers,
}

func (s Status) String() string {
	if s < 0 || int(s) >= MaxStatus {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// ParseStatus maps a snake_case key to a Status
func ParseStatus(key string) (Status, error) {
	s, ok := statusKeys[key]
	if !ok {
		return Uneventful, fmt.Errorf("unknown system status %q", key)
	}
	return s, nil
}

// Resource is a special resource tag. Resource values stored in static
// tables use NoResource for "no rule".
type Resource int

const (
	NoResource Resource = iota - 1
	NothingSpecial
	MineralRich
	MineralPoor
	Desert
	LotsOfWater
	RichSoil
	PoorSoil
	RichFauna
	Lifeless
	WeirdMushrooms
	LotsOfHerbs
	Artistic
	Warlike
)

// MaxResources is the number of resource tags including NothingSpecial
const MaxResources = 13

var resourceNames = [MaxResources]string{
	"Nothing special", "Mineral rich", "Mineral poor", "Desert", "Lots of water", "Rich soil",
	"Poor soil", "Rich fauna", "Lifeless", "Weird mushrooms", "Lots of herbs", "Artistic", "Warlike",
}

var resourceKeys = map[string]Resource{
	"":                NoResource,
	"nothing_special": NothingSpecial,
	"mineral_rich":    MineralRich,
	"mineral_poor":    MineralPoor,
	"desert":          Desert,
	"lots_of_water":   LotsOfWater,
	"rich_soil":       RichSoil,
	"poor_soil":       PoorSoil,
	"rich_fauna":      RichFauna,
	"lifeless":        Lifeless,
	"weird_mushrooms": WeirdMushrooms,
	"lots_of_herbs":   LotsOfHerbs,
	"artistic":        Artistic,
	"warlike":         Warlike,
}

func (r Resource) String() string {
	if r < 0 || int(r) >= MaxResources {
		return "None"
	}
	return resourceNames[r]
}

// ParseResource maps a snake_case key to a Resource. The empty key is NoResource.
func ParseResource(key string) (Resource, error) {
	r, ok := resourceKeys[key]
	if !ok {
		return NoResource, fmt.Errorf("unknown special resource %q", key)
	}
	return r, nil
}

// MaxSize is the number of size classes
const MaxSize = 5

var sizeNames = [MaxSize]string{"Tiny", "Small", "Medium", "Large", "Huge"}

// SizeName returns the display name of a size class
func SizeName(size int) string {
	if size < 0 || size >= MaxSize {
		return fmt.Sprintf("Size %d", size)
	}
	return sizeNames[size]
}

// MaxTechLevel is the number of tech levels
const MaxTechLevel = 8

var techNames = [MaxTechLevel]string{
	"Pre-agricultural", "Agricultural", "Medieval", "Renaissance",
	"Early Industrial", "Industrial", "Post-industrial", "Hi-tech",
}

// TechName returns the display name of a tech level
func TechName(level int) string {
	if level < 0 || level >= MaxTechLevel {
		return fmt.Sprintf("Tech %d", level)
	}
	return techNames[level]
}
