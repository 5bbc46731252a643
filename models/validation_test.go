package models

import "testing"

func float(v float64) *float64 { return &v }

func validTransaction() SupplyChainTransactionCreate {
	return SupplyChainTransactionCreate{
		CropID:          1,
		TransactionType: "harvest",
		Quantity:        120.5,
		Price:           float(35),
		FromLocation:    "North Field",
		ToLocation:      "Central Warehouse",
		BlockchainHash:  "a1b2c3d4e5",
		Status:          "pending",
	}
}

func TestValidateAcceptsValidPayloads(t *testing.T) {
	payloads := []interface{}{
		UserCreate{Name: "Jane Doe", Email: "jane@farm.io", Password: "Secret123", Role: "farmer"},
		SensorCreate{Type: "soil_moisture", Location: "East Paddock", Status: "active"},
		SensorDataCreate{SensorID: 3, Temperature: float(21.5), PHLevel: float(6.8)},
		IrrigationSystemCreate{FarmID: 2, Status: "on", WaterUsage: 1500},
		WeatherDataCreate{Temperature: float(-10), Humidity: float(0), Rainfall: float(0), WindSpeed: float(12)},
		CropManagementCreate{Name: "Winter Wheat", PlantingDate: "2025-03-01", Status: "planted"},
		FertilizationSystemCreate{FarmID: 1, Status: "maintenance", NutrientType: "Nitrogen mix 20"},
		PestDiseaseDetectionCreate{CropID: 4, SymptomDetected: "Yellowing leaf edges", Diagnosis: "Nitrogen deficiency in topsoil", RecommendedAction: "Apply nitrogen rich fertilizer"},
		validTransaction(),
	}
	for _, p := range payloads {
		if errs := Validate(p); errs != nil {
			t.Errorf("Validate(%+v) = %v, expected no errors", p, errs)
		}
	}
}

func TestValidateRejectsAndNamesField(t *testing.T) {
	badHash := validTransaction()
	badHash.BlockchainHash = "a1b2c3d4e" // 9 chars

	badQuantity := validTransaction()
	badQuantity.Quantity = 0

	badLocation := validTransaction()
	badLocation.FromLocation = "NY" // too short

	tests := []struct {
		name    string
		payload interface{}
		field   string
	}{
		{"digits in user name", UserCreate{Name: "John123", Email: "john@farm.io", Password: "Secret123", Role: "farmer"}, "name"},
		{"bad email", UserCreate{Name: "John Smith", Email: "not-an-email", Password: "Secret123", Role: "farmer"}, "email"},
		{"unknown role", UserCreate{Name: "John Smith", Email: "john@farm.io", Password: "Secret123", Role: "manager"}, "role"},
		{"temperature above range", SensorDataCreate{SensorID: 1, Temperature: float(61)}, "temperature"},
		{"temperature below range", SensorDataCreate{SensorID: 1, Temperature: float(-51)}, "temperature"},
		{"ph above range", SensorDataCreate{SensorID: 1, PHLevel: float(15)}, "ph_level"},
		{"humidity above range", SensorDataCreate{SensorID: 1, Humidity: float(101)}, "humidity"},
		{"negative soil moisture", SensorDataCreate{SensorID: 1, SoilMoisture: float(-1)}, "soil_moisture"},
		{"missing sensor reference", SensorDataCreate{Temperature: float(20)}, "sensor_id"},
		{"unknown sensor type", SensorCreate{Type: "pressure", Location: "East Paddock", Status: "active"}, "type"},
		{"short location", SensorCreate{Type: "pH", Location: "AB", Status: "active"}, "location"},
		{"unknown irrigation status", IrrigationSystemCreate{FarmID: 1, Status: "paused"}, "status"},
		{"zero farm id", FertilizationSystemCreate{Status: "active", NutrientType: "Phosphate blend"}, "farm_id"},
		{"symbols in nutrient type", FertilizationSystemCreate{FarmID: 1, Status: "active", NutrientType: "N-P-K!"}, "nutrient_type"},
		{"bad planting date", CropManagementCreate{Name: "Winter Wheat", PlantingDate: "01/03/2025", Status: "planted"}, "planting_date"},
		{"short symptom text", PestDiseaseDetectionCreate{CropID: 1, SymptomDetected: "spots", Diagnosis: "Fungal infection on leaves", RecommendedAction: "Apply copper based fungicide"}, "symptom_detected"},
		{"short blockchain hash", badHash, "blockchain_hash"},
		{"zero quantity", badQuantity, "quantity"},
		{"short from location", badLocation, "from_location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.payload)
			if errs == nil {
				t.Fatalf("Validate(%+v) accepted, expected rejection of %q", tt.payload, tt.field)
			}
			found := false
			for _, fe := range errs {
				if fe.Field == tt.field {
					found = true
					if fe.Message == "" {
						t.Errorf("field %q rejected without a reason", tt.field)
					}
				}
			}
			if !found {
				t.Errorf("Validate(%+v) = %v, expected field %q to be named", tt.payload, errs, tt.field)
			}
		})
	}
}

func TestValidateAggregatesAllOffendingFields(t *testing.T) {
	errs := Validate(UserCreate{Name: "J", Email: "nope", Password: "x", Role: "boss"})
	if len(errs) < 3 {
		t.Fatalf("expected name, email and role all reported, got %v", errs)
	}
	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	for _, f := range []string{"name", "email", "role"} {
		if !fields[f] {
			t.Errorf("field %q missing from aggregated errors %v", f, errs)
		}
	}
}
