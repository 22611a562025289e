package models

// Category represents spending categories for transactions.
type Category string

const (
	CategoryDining        Category = "Dining & Drinks"
	CategoryGroceries     Category = "Groceries"
	CategoryHousing       Category = "Housing & Rent"
	CategoryBills         Category = "Bills & Utilities"
	CategoryTransport     Category = "Transport"
	CategoryKids          Category = "Kids & School"
	CategoryHealth        Category = "Health & Insurance"
	CategorySubscriptions Category = "Subscriptions"
	CategoryTravel        Category = "Travel & Vacation"
	CategorySavings       Category = "Savings Transfer"
	CategoryMiscellaneous Category = "Miscellaneous"
	CategoryOther         Category = "Other"
)
