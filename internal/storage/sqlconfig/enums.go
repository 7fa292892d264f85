package sqlconfig

import "time"

// The enum types below map one-to-one onto the named postgres enum types
// created by the migrations. Adding a value requires a schema migration.

type MovementType string

const (
	MovementTypeIncome  MovementType = "INCOME"
	MovementTypeExpense MovementType = "EXPENSE"
)

func (m MovementType) Valid() bool {
	return m == MovementTypeIncome || m == MovementTypeExpense
}

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusCanceled  TransactionStatus = "CANCELED"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusCanceled:
		return true
	}
	return false
}

// Finished reports whether the status is terminal. A finished transaction is
// immutable apart from system-managed bookkeeping fields.
func (s TransactionStatus) Finished() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusCanceled
}

type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryHome          Category = "HOME"
	CategoryEducation     Category = "EDUCATION"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryTransport     Category = "TRANSPORT"
	CategoryHealthy       Category = "HEALTHY"
	CategorySalary        Category = "SALARY"
	CategoryUtilities     Category = "UTILITIES"
	CategoryInsurance     Category = "INSURANCE"
	CategorySavings       Category = "SAVINGS"
	CategoryDebtPayments  Category = "DEBT_PAYMENTS"
	CategoryChildCare     Category = "CHILD_CARE"
	CategoryGifts         Category = "GIFTS"
	CategorySubscriptions Category = "SUBSCRIPTIONS"
	CategoryTravel        Category = "TRAVEL"
	CategoryClothing      Category = "CLOTHING"
	CategoryMaintenance   Category = "MAINTENANCE"
)

var categories = map[Category]struct{}{
	CategoryFood: {}, CategoryHome: {}, CategoryEducation: {},
	CategoryEntertainment: {}, CategoryTransport: {}, CategoryHealthy: {},
	CategorySalary: {}, CategoryUtilities: {}, CategoryInsurance: {},
	CategorySavings: {}, CategoryDebtPayments: {}, CategoryChildCare: {},
	CategoryGifts: {}, CategorySubscriptions: {}, CategoryTravel: {},
	CategoryClothing: {}, CategoryMaintenance: {},
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

type Frequency string

const (
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly
}

type MonthReference string

const (
	MonthJanuary   MonthReference = "JANUARY"
	MonthFebruary  MonthReference = "FEBRUARY"
	MonthMarch     MonthReference = "MARCH"
	MonthApril     MonthReference = "APRIL"
	MonthMay       MonthReference = "MAY"
	MonthJune      MonthReference = "JUNE"
	MonthJuly      MonthReference = "JULY"
	MonthAugust    MonthReference = "AUGUST"
	MonthSeptember MonthReference = "SEPTEMBER"
	MonthOctober   MonthReference = "OCTOBER"
	MonthNovember  MonthReference = "NOVEMBER"
	MonthDecember  MonthReference = "DECEMBER"
)

var monthByNumber = [...]MonthReference{
	MonthJanuary, MonthFebruary, MonthMarch, MonthApril, MonthMay, MonthJune,
	MonthJuly, MonthAugust, MonthSeptember, MonthOctober, MonthNovember,
	MonthDecember,
}

// MonthReferenceFromMonth converts a time.Month into its storage enum value.
func MonthReferenceFromMonth(m time.Month) MonthReference {
	return monthByNumber[int(m)-1]
}

// Month converts the storage enum value back into a time.Month.
// Invalid values return 0.
func (m MonthReference) Month() time.Month {
	for i, name := range monthByNumber {
		if name == m {
			return time.Month(i + 1)
		}
	}
	return 0
}

func (m MonthReference) Valid() bool {
	return m.Month() != 0
}
