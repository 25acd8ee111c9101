package clusters

var PumpConfigurationAndControl = Cluster{
	ID:   0x0200,
	Name: "PumpConfigurationAndControl",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "MaxPressure", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0001, Name: "MaxSpeed", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0002, Name: "MaxFlow", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0011, Name: "EffectiveOperationMode", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0012, Name: "EffectiveControlMode", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0013, Name: "Capacity", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0020, Name: "OperationMode", Type: TypeEnum8, Access: AccessRead | AccessWrite},
	},
}

var Thermostat = Cluster{
	ID:   0x0201,
	Name: "Thermostat",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "LocalTemperature", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0011, Name: "OccupiedCoolingSetpoint", Type: TypeInt16, Access: AccessRead | AccessWrite},
		{ID: 0x0012, Name: "OccupiedHeatingSetpoint", Type: TypeInt16, Access: AccessRead | AccessWrite},
		{ID: 0x0015, Name: "MinHeatSetpointLimit", Type: TypeInt16, Access: AccessRead | AccessWrite},
		{ID: 0x0016, Name: "MaxHeatSetpointLimit", Type: TypeInt16, Access: AccessRead | AccessWrite},
		{ID: 0x001B, Name: "ControlSequenceOfOperation", Type: TypeEnum8, Access: AccessRead | AccessWrite},
		{ID: 0x001C, Name: "SystemMode", Type: TypeEnum8, Access: AccessRead | AccessWrite},
	},
}

var FanControl = Cluster{
	ID:   0x0202,
	Name: "FanControl",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "FanMode", Type: TypeEnum8, Access: AccessRead | AccessWrite},
		{ID: 0x0001, Name: "FanModeSequence", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0002, Name: "PercentSetting", Type: TypePercent, Access: AccessRead | AccessWrite},
		{ID: 0x0003, Name: "PercentCurrent", Type: TypePercent, Access: AccessRead},
	},
}

var ThermostatUserInterfaceConfiguration = Cluster{
	ID:   0x0204,
	Name: "ThermostatUserInterfaceConfiguration",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "TemperatureDisplayMode", Type: TypeEnum8, Access: AccessRead | AccessWrite},
		{ID: 0x0001, Name: "KeypadLockout", Type: TypeEnum8, Access: AccessRead | AccessWrite},
		{ID: 0x0002, Name: "ScheduleProgrammingVisibility", Type: TypeEnum8, Access: AccessRead | AccessWrite},
	},
}
