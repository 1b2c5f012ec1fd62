package models

// SizeUnit is the unit a field size is reported in.
type SizeUnit string

const (
	UnitHectares SizeUnit = "hectares"
	UnitAcres    SizeUnit = "acres"
	UnitBigha    SizeUnit = "bigha"
)

// CropType identifies the crop grown on a field. The set is open: any value
// outside the known crops is accepted and gets the general-purpose plan.
type CropType string

const (
	CropWheat      CropType = "wheat"
	CropRice       CropType = "rice"
	CropCorn       CropType = "corn"
	CropSoybeans   CropType = "soybeans"
	CropCotton     CropType = "cotton"
	CropSugarcane  CropType = "sugarcane"
	CropVegetables CropType = "vegetables"
	CropFruits     CropType = "fruits"
	CropPulses     CropType = "pulses"
)

// SoilType is the soil classification selected on the form.
type SoilType string

const (
	SoilBlack  SoilType = "black"
	SoilLoamy  SoilType = "loamy"
	SoilClayey SoilType = "clayey"
	SoilRed    SoilType = "red"
	SoilSandy  SoilType = "sandy"
)

// FieldObservationForm is the recommendation form exactly as submitted.
// Numeric fields arrive as text and are parsed before any calculation.
type FieldObservationForm struct {
	FieldName    string `json:"fieldName"`
	FieldSize    string `json:"fieldSize"`
	SizeUnit     string `json:"sizeUnit"`
	CropType     string `json:"cropType"`
	SoilType     string `json:"soilType"`
	SoilPH       string `json:"soilPH"`
	Nitrogen     string `json:"nitrogen"`
	Phosphorus   string `json:"phosphorus"`
	Potassium    string `json:"potassium"`
	Temperature  string `json:"temperature"`
	Humidity     string `json:"humidity"`
	SoilMoisture string `json:"soilMoisture"`
}

// FieldObservation is a parsed and validated form submission.
// Nutrients are in mg/kg (ppm), temperature in °C, humidity and moisture in percent.
type FieldObservation struct {
	FieldName    string   `json:"fieldName" validate:"required"`
	SizeUnit     SizeUnit `json:"sizeUnit" validate:"oneof=hectares acres bigha"`
	CropType     CropType `json:"cropType"`
	SoilType     SoilType `json:"soilType,omitempty" validate:"omitempty,oneof=black loamy clayey red sandy"`
	FieldSize    float64  `json:"fieldSize" validate:"gt=0,lte=1000000"`
	SoilPH       float64  `json:"soilPH" validate:"gte=0,lte=14"`
	Nitrogen     float64  `json:"nitrogen" validate:"gte=0"`
	Phosphorus   float64  `json:"phosphorus" validate:"gte=0"`
	Potassium    float64  `json:"potassium" validate:"gte=0"`
	Temperature  float64  `json:"temperature"`
	Humidity     float64  `json:"humidity" validate:"gte=0,lte=100"`
	SoilMoisture float64  `json:"soilMoisture" validate:"gte=0,lte=100"`
}
