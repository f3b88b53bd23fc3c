package dto

type CourseDTO struct {
	ID         string `json:"id" example:"python-basics"`
	CategoryID string `json:"category_id" example:"python"`
	Name       string `json:"name" example:"Python Basics"`
	Price      string `json:"price" example:"N30,000"`
	PriceKobo  int64  `json:"price_kobo" example:"3000000"`
}

type CategoryDTO struct {
	ID              string      `json:"id" example:"python"`
	Name            string      `json:"name" example:"Python"`
	Description     string      `json:"description"`
	BundleName      string      `json:"bundle_name" example:"Python Bundle"`
	BundlePrice     string      `json:"bundle_price" example:"N30,000"`
	BundlePriceKobo int64       `json:"bundle_price_kobo" example:"3000000"`
	Courses         []CourseDTO `json:"courses"`
}

type CourseDetailsDTO struct {
	Course   CourseDTO   `json:"course"`
	Category string      `json:"category" example:"Python"`
	Related  []CourseDTO `json:"related"`
}

type BankAccountDTO struct {
	Bank   string `json:"bank" example:"Access Bank"`
	Number string `json:"number" example:"1907856695"`
	Name   string `json:"name" example:"Ebubechukwu Ifeanyi Elijah"`
}

type PaymentMethodDTO struct {
	ID    string `json:"id" example:"bank_transfer"`
	Label string `json:"label" example:"Bank Transfer"`
}

type PaymentAccountsDTO struct {
	Accounts []BankAccountDTO   `json:"accounts"`
	Methods  []PaymentMethodDTO `json:"methods"`
}
