package clusters

var DoorLock = Cluster{
	ID:   0x0101,
	Name: "DoorLock",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "LockState", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0001, Name: "LockType", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0002, Name: "ActuatorEnabled", Type: TypeBool, Access: AccessRead},
		{ID: 0x0003, Name: "DoorState", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0023, Name: "AutoRelockTime", Type: TypeUint32, Access: AccessRead | AccessWrite},
		{ID: 0x0024, Name: "SoundVolume", Type: TypeUint8, Access: AccessRead | AccessWrite},
		{ID: 0x0025, Name: "OperatingMode", Type: TypeEnum8, Access: AccessRead | AccessWrite},
		{ID: 0x0033, Name: "WrongCodeEntryLimit", Type: TypeUint8, Access: AccessRead | AccessWrite},
	},
}

var WindowCovering = Cluster{
	ID:   0x0102,
	Name: "WindowCovering",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "Type", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0008, Name: "CurrentPositionLiftPercentage", Type: TypePercent, Access: AccessRead},
		{ID: 0x0009, Name: "CurrentPositionTiltPercentage", Type: TypePercent, Access: AccessRead},
		{ID: 0x000A, Name: "OperationalStatus", Type: TypeMap8, Access: AccessRead},
		{ID: 0x000B, Name: "TargetPositionLiftPercent100ths", Type: TypeUint16, Access: AccessRead},
		{ID: 0x000D, Name: "EndProductType", Type: TypeEnum8, Access: AccessRead},
		{ID: 0x0017, Name: "Mode", Type: TypeMap8, Access: AccessRead | AccessWrite},
	},
}
