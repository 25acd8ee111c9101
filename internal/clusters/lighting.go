package clusters

var ColorControl = Cluster{
	ID:   0x0300,
	Name: "ColorControl",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "CurrentHue", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0001, Name: "CurrentSaturation", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0007, Name: "ColorTemperatureMireds", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0008, Name: "ColorMode", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x4001, Name: "EnhancedColorMode", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x400A, Name: "ColorCapabilities", Type: TypeMap16, Access: AccessRead},
		{ID: 0x4010, Name: "StartUpColorTemperatureMireds", Type: TypeUint16, Access: AccessRead | AccessWrite},
	},
}

var BallastConfiguration = Cluster{
	ID:   0x0301,
	Name: "BallastConfiguration",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "PhysicalMinLevel", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0001, Name: "PhysicalMaxLevel", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0002, Name: "BallastStatus", Type: TypeMap8, Access: AccessRead},
		{ID: 0x0010, Name: "MinLevel", Type: TypeUint8, Access: AccessRead | AccessWrite},
		{ID: 0x0011, Name: "MaxLevel", Type: TypeUint8, Access: AccessRead | AccessWrite},
	},
}
