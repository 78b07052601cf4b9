package domain

// DefaultThreshold is the low-stock cutoff used when no setting has been
// saved or the saved value is unusable.
const DefaultThreshold = 5

// DefaultItems returns the starter catalog loaded on first boot, before
// any inventory has been saved.
func DefaultItems() []Item {
	return []Item{
		{ID: 1, Name: "Espresso Beans 1kg", Category: "Beverage", Stock: 50, Price: 520},
		{ID: 2, Name: "Whole Milk 1L", Category: "Dairy", Stock: 12, Price: 88},
		{ID: 3, Name: "Chocolate Syrup", Category: "Condiments", Stock: 6, Price: 150},
		{ID: 4, Name: "Paper Cups (100s)", Category: "Packaging", Stock: 3, Price: 180},
		{ID: 5, Name: "Green Tea Bags", Category: "Beverage", Stock: 22, Price: 95},
	}
}

// DefaultSettings returns the settings used until the first settings save.
func DefaultSettings() Settings {
	return Settings{Threshold: DefaultThreshold, Theme: ThemeDark}
}
