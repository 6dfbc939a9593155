package household

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DSado88/Grocery/internal/pkg/common"
)

// Model is the top-level household profile parsed from
// household-model.yaml. Loaded once per invocation and read-only after.
type Model struct {
	Family          FamilyProfile `yaml:"family"`
	Stores          Stores        `yaml:"stores"`
	AmazonRecurring []AmazonItem  `yaml:"amazon_recurring"`
	GiantRecurring  []GiantItem   `yaml:"giant_recurring"`
	// Accepted for document compatibility, not read by the core.
	AcmeRecurring  []yaml.Node `yaml:"acme_recurring"`
	MealPlanSource string      `yaml:"meal_plan_source"`
}

// FamilyProfile lists the household members.
type FamilyProfile struct {
	Members []FamilyMember `yaml:"members"`
}

// FamilyMember is one person in the household.
type FamilyMember struct {
	Name string `yaml:"name"`
	Age  *int   `yaml:"age"`
}

// Stores holds per-store account metadata. Descriptive only; scoring
// never reads it.
type Stores struct {
	Giant  *StoreConfig `yaml:"giant"`
	Acme   *StoreConfig `yaml:"acme"`
	Amazon *StoreConfig `yaml:"amazon"`
}

// StoreConfig describes how the household shops at one store.
type StoreConfig struct {
	StoreType        string   `yaml:"type"`
	OrderMethod      string   `yaml:"order_method"`
	Frequency        string   `yaml:"frequency"`
	Account          string   `yaml:"account"`
	Store            string   `yaml:"store"`
	AvgOrderTotal    string   `yaml:"avg_order_total"`
	TotalAnnualSpend string   `yaml:"total_annual_spend"`
	AvgItemsPerOrder int      `yaml:"avg_items_per_order"`
	DataSources      []string `yaml:"data_sources"`
	DataSource       string   `yaml:"data_source"`
}

// AmazonItem is a recurring online-retailer item.
type AmazonItem struct {
	Item      string   `yaml:"item"`
	Category  Category `yaml:"category"`
	CycleDays string   `yaml:"cycle_days"`
	LastSeen  string   `yaml:"last_seen"`
	Note      string   `yaml:"note"`
}

// GiantItem is a recurring tier-store item with purchase-frequency data.
type GiantItem struct {
	Item       string   `yaml:"item"`
	Category   Category `yaml:"category"`
	Frequency  string   `yaml:"frequency"`
	TypicalQty string   `yaml:"typical_qty"`
	Price      string   `yaml:"price"`
	Store      Store    `yaml:"store"`
	OOSCount   int      `yaml:"oos_count"`
	Note       string   `yaml:"note"`
}

// Tier derives the frequency tier from the item's "N/M" frequency
// string. Items with no frequency data classify as Rare.
func (g *GiantItem) Tier() FrequencyTier {
	if g.Frequency == "" {
		return TierRare
	}
	return ParseFrequencyTier(g.Frequency)
}

// FromFile loads a household model from a YAML file.
func FromFile(path string) (*Model, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewParseError("household model", path, err)
	}
	model, err := FromYAML(content)
	if err != nil {
		return nil, common.NewParseError("household model", path, err)
	}
	return model, nil
}

// FromYAML parses a household model from YAML bytes.
func FromYAML(data []byte) (*Model, error) {
	var model Model
	if err := yaml.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// ItemsByTier returns all tier-store recurring items at a given tier.
func (m *Model) ItemsByTier(tier FrequencyTier) []*GiantItem {
	var items []*GiantItem
	for i := range m.GiantRecurring {
		if m.GiantRecurring[i].Tier() == tier {
			items = append(items, &m.GiantRecurring[i])
		}
	}
	return items
}

// Staples returns every-order tier-store items. These are auto-included
// in generated lists regardless of selected recipes.
func (m *Model) Staples() []*GiantItem {
	return m.ItemsByTier(TierEveryOrder)
}
