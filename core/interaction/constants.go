package interaction

import "retrofit-calc/core/types"

// Savings percentages of annual building energy.
const (
	SolarGlassBase       = 8.0
	SolarGlassDiscounted = 2.0 // cooling upgrade selected or split-unit building

	ReflectiveRoofBase           = 4.0
	ReflectiveRoofWithSolarGlass = 2.0
	ReflectiveRoofWithCooling    = 1.0

	CoolingEnvelopeDiscount = 2.0 // per envelope measure, cumulative

	ExhaustFanBase = 1.0

	LEDBase         = 4.0
	LEDWithControls = 1.0 // BMS or a lighting control scheme selected

	WaterHeaterBase    = 0.4
	WaterHeaterWithBMS = 0.1

	BMSBase        = 19.0
	BMSWithCooling = 5.0

	EMSBase = 4.0
)

var coolingBase = map[types.CoolingUpgrade]float64{
	types.CoolingUpgradeAirCooledChiller:   28,
	types.CoolingUpgradeWaterCooledChiller: 32,
	types.CoolingUpgradeVRF:                33,
	types.CoolingUpgradePackageUnits:       28,
	types.CoolingUpgradeSplitUnits:         30,
}

var lightingControlBase = map[types.LightingControl]float64{
	types.LightingControlSeparateCircuits: 2,
	types.LightingControlCentralized:      3,
}

var pumpBase = map[types.PumpUpgrade]float64{
	types.PumpUpgradeNewPump:          2,
	types.PumpUpgradeRetrofitExisting: 4,
}

var pumpWithBMS = map[types.PumpUpgrade]float64{
	types.PumpUpgradeNewPump:          1,
	types.PumpUpgradeRetrofitExisting: 2,
}
