package models

// Address 收货地址（后端保存，保证每用户唯一默认地址）
type Address struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	WardCode     string `json:"ward_code"`
	Ward         string `json:"ward"`
	DistrictCode string `json:"district_code"`
	District     string `json:"district"`
	ProvinceCode string `json:"province_code"`
	Province     string `json:"province"`
	IsDefault    bool   `json:"is_default"`
}

// LocationOption 行政区划选项（省/区/坊）
type LocationOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
