package product

// Resource IDs as used by the SimCompanies exchange API.
const (
	ResourcePower        = 1
	ResourceWater        = 2
	ResourceApples       = 3
	ResourceOranges      = 4
	ResourceGrapes       = 5
	ResourceGrain        = 6
	ResourceSausages     = 8
	ResourceEggs         = 9
	ResourceCrudeOil     = 10
	ResourcePetrol       = 11
	ResourceDiesel       = 12
	ResourceMinerals     = 14
	ResourceBauxite      = 15
	ResourceSilicon      = 16
	ResourceChemicals    = 17
	ResourceAluminium    = 18
	ResourcePlastic      = 19
	ResourceProcessors   = 20
	ResourceElectronics  = 21
	ResourceBatteries    = 22
	ResourceDisplays     = 23
	ResourceSmartPhones  = 24
	ResourceTablets      = 25
	ResourceLaptops      = 26
	ResourceMonitors     = 27
	ResourceTelevisions  = 28
	ResourceCotton       = 40
	ResourceFabric       = 41
	ResourceIronOre      = 42
	ResourceSteel        = 43
	ResourceSand         = 44
	ResourceGlass        = 45
	ResourceLeather      = 46
)

// Well-known Products (pre-created instances)
var (
	Power       = New(ResourcePower, "Power", 1)
	Water       = New(ResourceWater, "Water", 1)
	Apples      = New(ResourceApples, "Apples", 1)
	Oranges     = New(ResourceOranges, "Oranges", 1)
	Grapes      = New(ResourceGrapes, "Grapes", 1)
	Grain       = New(ResourceGrain, "Grain", 1)
	Sausages    = New(ResourceSausages, "Sausages", 1)
	Eggs        = New(ResourceEggs, "Eggs", 1)
	CrudeOil    = New(ResourceCrudeOil, "Crude oil", 1)
	Petrol      = New(ResourcePetrol, "Petrol", 1)
	Diesel      = New(ResourceDiesel, "Diesel", 1)
	Minerals    = New(ResourceMinerals, "Minerals", 1)
	Bauxite     = New(ResourceBauxite, "Bauxite", 1)
	Silicon     = New(ResourceSilicon, "Silicon", 2)
	Chemicals   = New(ResourceChemicals, "Chemicals", 2)
	Aluminium   = New(ResourceAluminium, "Aluminium", 2)
	Plastic     = New(ResourcePlastic, "Plastic", 1)
	Processors  = New(ResourceProcessors, "Processors", 2)
	Electronics = New(ResourceElectronics, "Electronic components", 2)
	Batteries   = New(ResourceBatteries, "Batteries", 2)
	Displays    = New(ResourceDisplays, "Displays", 3)
	SmartPhones = New(ResourceSmartPhones, "Smart phones", 2)
	Tablets     = New(ResourceTablets, "Tablets", 3)
	Laptops     = New(ResourceLaptops, "Laptops", 4)
	Monitors    = New(ResourceMonitors, "Monitors", 4)
	Televisions = New(ResourceTelevisions, "Televisions", 6)
	Cotton      = New(ResourceCotton, "Cotton", 1)
	Fabric      = New(ResourceFabric, "Fabric", 1)
	IronOre     = New(ResourceIronOre, "Iron ore", 1)
	Steel       = New(ResourceSteel, "Steel", 2)
	Sand        = New(ResourceSand, "Sand", 1)
	Glass       = New(ResourceGlass, "Glass", 2)
	Leather     = New(ResourceLeather, "Leather", 1)
)

// DefaultRegistry returns a registry pre-populated with well-known products.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range []*Product{
		Power, Water, Apples, Oranges, Grapes, Grain, Sausages, Eggs,
		CrudeOil, Petrol, Diesel, Minerals, Bauxite, Silicon, Chemicals,
		Aluminium, Plastic, Processors, Electronics, Batteries, Displays,
		SmartPhones, Tablets, Laptops, Monitors, Televisions, Cotton,
		Fabric, IronOre, Steel, Sand, Glass, Leather,
	} {
		r.Register(p)
	}
	return r
}
