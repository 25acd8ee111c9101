// Package clusters is a read-only catalog of well-known Matter cluster
// and attribute names, used to label attribute paths in operator-facing
// output. Unknown ids fall back to hex. The catalog never affects what
// gets read or written.
package clusters

import (
	"fmt"

	"github.com/sharaf-n/ha-matter-device-configure/internal/matter"
)

// Access flags
const (
	AccessRead  uint8 = 0x01
	AccessWrite uint8 = 0x02
)

// DataType names the data model type of an attribute as shown to the
// operator. The server owns wire encoding.
type DataType string

const (
	TypeBool    DataType = "bool"
	TypeUint8   DataType = "uint8"
	TypeUint16  DataType = "uint16"
	TypeUint32  DataType = "uint32"
	TypeInt16   DataType = "int16"
	TypeEnum8   DataType = "enum8"
	TypeMap8    DataType = "map8"
	TypeMap16   DataType = "map16"
	TypeMap32   DataType = "map32"
	TypePercent DataType = "percent"
	TypeString  DataType = "string"
	TypeList    DataType = "list"
	TypeStruct  DataType = "struct"
)

// Attribute describes one attribute of a cluster.
type Attribute struct {
	ID     matter.AttributeID
	Name   string
	Type   DataType
	Access uint8 // bitmask: 1=read, 2=write
}

// IsWritable returns true if the attribute accepts writes.
func (a *Attribute) IsWritable() bool {
	return a.Access&AccessWrite != 0
}

// Cluster describes one cluster and its well-known attributes.
type Cluster struct {
	ID         matter.ClusterID
	Name       string
	Attributes []Attribute
}

// FindAttribute looks up an attribute by id, falling back to the global
// attributes every cluster carries. Returns nil if not found.
func (c *Cluster) FindAttribute(id matter.AttributeID) *Attribute {
	for i := range c.Attributes {
		if c.Attributes[i].ID == id {
			return &c.Attributes[i]
		}
	}
	return findGlobal(id)
}

// globalAttributes are present on every cluster of the data model.
var globalAttributes = []Attribute{
	{ID: 0xFFF8, Name: "GeneratedCommandList", Type: TypeList, Access: AccessRead},
	{ID: 0xFFF9, Name: "AcceptedCommandList", Type: TypeList, Access: AccessRead},
	{ID: 0xFFFA, Name: "EventList", Type: TypeList, Access: AccessRead},
	{ID: 0xFFFB, Name: "AttributeList", Type: TypeList, Access: AccessRead},
	{ID: 0xFFFC, Name: "FeatureMap", Type: TypeMap32, Access: AccessRead},
	{ID: 0xFFFD, Name: "ClusterRevision", Type: TypeUint16, Access: AccessRead},
}

func findGlobal(id matter.AttributeID) *Attribute {
	for i := range globalAttributes {
		if globalAttributes[i].ID == id {
			return &globalAttributes[i]
		}
	}
	return nil
}

var catalog = make(map[matter.ClusterID]*Cluster)

func register(defs ...*Cluster) {
	for _, c := range defs {
		catalog[c.ID] = c
	}
}

func init() {
	// General
	register(&Identify, &Groups, &OnOff, &LevelControl, &Descriptor, &BasicInformation)
	// Measurement and sensing
	register(&IlluminanceMeasurement, &TemperatureMeasurement, &PressureMeasurement,
		&FlowMeasurement, &RelativeHumidityMeasurement, &OccupancySensing, &BooleanState)
	// HVAC
	register(&PumpConfigurationAndControl, &Thermostat, &FanControl,
		&ThermostatUserInterfaceConfiguration)
	// Closures
	register(&DoorLock, &WindowCovering)
	// Lighting
	register(&ColorControl, &BallastConfiguration)
}

// Lookup returns the catalog entry for a cluster id, or nil when the
// cluster is not in the catalog.
func Lookup(id matter.ClusterID) *Cluster {
	return catalog[id]
}

// ClusterName returns the well-known name for a cluster id, or the id in
// hex when unknown.
func ClusterName(id matter.ClusterID) string {
	if c := Lookup(id); c != nil {
		return c.Name
	}
	return fmt.Sprintf("0x%04X", uint32(id))
}

// AttributeName returns the well-known name for an attribute within a
// cluster, or the id in hex when unknown.
func AttributeName(cluster matter.ClusterID, attr matter.AttributeID) string {
	if c := Lookup(cluster); c != nil {
		if a := c.FindAttribute(attr); a != nil {
			return a.Name
		}
	} else if a := findGlobal(attr); a != nil {
		return a.Name
	}
	return fmt.Sprintf("0x%04X", uint32(attr))
}

// Describe renders a cluster/attribute pair for operator output,
// e.g. "OccupancySensing(1030)/HoldTime(3)".
func Describe(cluster matter.ClusterID, attr matter.AttributeID) string {
	return fmt.Sprintf("%s(%d)/%s(%d)",
		ClusterName(cluster), uint32(cluster),
		AttributeName(cluster, attr), uint32(attr))
}
