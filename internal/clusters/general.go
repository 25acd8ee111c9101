package clusters

var Identify = Cluster{
	ID:   0x0003,
	Name: "Identify",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "IdentifyTime", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x0001, Name: "IdentifyType", Type: TypeEnum8, Access: AccessRead},
	},
}

var Groups = Cluster{
	ID:   0x0004,
	Name: "Groups",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "NameSupport", Type: TypeMap8, Access: AccessRead},
	},
}

var OnOff = Cluster{
	ID:   0x0006,
	Name: "OnOff",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "OnOff", Type: TypeBool, Access: AccessRead},
		{ID: 0x4000, Name: "GlobalSceneControl", Type: TypeBool, Access: AccessRead},
		{ID: 0x4001, Name: "OnTime", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x4002, Name: "OffWaitTime", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x4003, Name: "StartUpOnOff", Type: TypeEnum8, Access: AccessRead | AccessWrite},
	},
}

var LevelControl = Cluster{
	ID:   0x0008,
	Name: "LevelControl",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "CurrentLevel", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0001, Name: "RemainingTime", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0002, Name: "MinLevel", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0003, Name: "MaxLevel", Type: TypeUint8, Access: AccessRead},
		{ID: 0x0010, Name: "OnOffTransitionTime", Type: TypeUint16, Access: AccessRead | AccessWrite},
		{ID: 0x0011, Name: "OnLevel", Type: TypeUint8, Access: AccessRead | AccessWrite},
		{ID: 0x0014, Name: "DefaultMoveRate", Type: TypeUint8, Access: AccessRead | AccessWrite},
		{ID: 0x4000, Name: "StartUpCurrentLevel", Type: TypeUint8, Access: AccessRead | AccessWrite},
	},
}

var Descriptor = Cluster{
	ID:   0x001D,
	Name: "Descriptor",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "DeviceTypeList", Type: TypeList, Access: AccessRead},
		{ID: 0x0001, Name: "ServerList", Type: TypeList, Access: AccessRead},
		{ID: 0x0002, Name: "ClientList", Type: TypeList, Access: AccessRead},
		{ID: 0x0003, Name: "PartsList", Type: TypeList, Access: AccessRead},
	},
}

var BasicInformation = Cluster{
	ID:   0x0028,
	Name: "BasicInformation",
	Attributes: []Attribute{
		{ID: 0x0000, Name: "DataModelRevision", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0001, Name: "VendorName", Type: TypeString, Access: AccessRead},
		{ID: 0x0002, Name: "VendorID", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0003, Name: "ProductName", Type: TypeString, Access: AccessRead},
		{ID: 0x0004, Name: "ProductID", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0005, Name: "NodeLabel", Type: TypeString, Access: AccessRead | AccessWrite},
		{ID: 0x0007, Name: "HardwareVersion", Type: TypeUint16, Access: AccessRead},
		{ID: 0x0009, Name: "SoftwareVersion", Type: TypeUint32, Access: AccessRead},
		{ID: 0x000A, Name: "SoftwareVersionString", Type: TypeString, Access: AccessRead},
		{ID: 0x0011, Name: "Reachable", Type: TypeBool, Access: AccessRead},
		{ID: 0x0012, Name: "UniqueID", Type: TypeString, Access: AccessRead},
	},
}
