package clusters

var IlluminanceMeasurement = Cluster{
	ID:   0x0400,
	Name: "IlluminanceMeasurement",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "MeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0001, Name: "MinMeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0002, Name: "MaxMeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0003, Name: "Tolerance", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0004, Name: "LightSensorType", Type: TypeEnum8, Access: AccessRead},
	},
}

var TemperatureMeasurement = Cluster{
	ID:   0x0402,
	Name: "TemperatureMeasurement",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "MeasuredValue", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0001, Name: "MinMeasuredValue", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0002, Name: "MaxMeasuredValue", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0003, Name: "Tolerance", Type: TypeUint16, Access: AccessRead},
	},
}

var PressureMeasurement = Cluster{
	ID:   0x0403,
	Name: "PressureMeasurement",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "MeasuredValue", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0001, Name: "MinMeasuredValue", Type: TypeInt16, Access: AccessRead},
		{ID: 0x0002, Name: "MaxMeasuredValue", Type: TypeInt16, Access: AccessRead},
	},
}

var FlowMeasurement = Cluster{
	ID:   0x0404,
	Name: "FlowMeasurement",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "MeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0001, Name: "MinMeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0002, Name: "MaxMeasuredValue", Type: TypeUint16, Access: AccessRead},
	},
}

var RelativeHumidityMeasurement = Cluster{
	ID:   0x0405,
	Name: "RelativeHumidityMeasurement",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "MeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0001, Name: "MinMeasuredValue", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0002, Name: "MaxMeasuredValue", Type: TypeUint16, Access: AccessRead},
	},
}

var OccupancySensing = Cluster{
	ID:   0x0406,
	Name: "OccupancySensing",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "Occupancy", Type: TypeMap8, Access: AccessRead},
		{ID: 0x0001, Name: "OccupancySensorType", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0002, Name: "OccupancySensorTypeBitmap", Type: TypeMap8, Access: AccessRead},
		{ID: 0x0003, Name: "HoldTime", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x0004, Name: "HoldTimeLimits", Type: TypeStruct, Access: AccessRead},
		{ID: 0x0010, Name: "PIROccupiedToUnoccupiedDelay", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x0011, Name: "PIRUnoccupiedToOccupiedDelay", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x0012, Name: "PIRUnoccupiedToOccupiedThreshold", Type: TypeUint8, Access: AccessRead | AccessWrite},
	},
}

var BooleanState = Cluster{
	ID:   0x0045,
	Name: "BooleanState",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "StateValue", Type: TypeBool, Access: AccessRead},
	},
}
