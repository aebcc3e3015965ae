package markets

// Fed decision markets the monitored positions are held in.
var defaultMarkets = []Market{
	{
		Name: "CUT25",
		Yes:  "92703761682322480664976766247614127878023988651992837287050266308961660624165",
		No:   "48193521645113703700467246669338225849301704920590102230072263970163239985027",
	},
	{
		Name: "CUTCUTCUT",
		Yes:  "95417221270011105499568468828531867453865533932484364685389046548264041887861",
		No:   "101322769768415942646735830228475566436146317671120615766292718518675772773223",
	},
	{
		Name: "NOCHANGE",
		Yes:  "112838095111461683880944516726938163688341306245473734071798778736646352193304",
		No:   "7321318078891059430231591636389479745928915782241484131001985601124919020061",
	},
	{
		Name: "CUTCUTPAUSE",
		Yes:  "113401754986342384261044700457165882158632153698445535217371023842472815025478",
		No:   "81906419701908530974011339985097627770048267181648886108185004759027261509242",
	},
}

var defaultCombinations = []Combination{
	{MarketA: "CUT25", LegA: LegYes, MarketB: "CUTCUTPAUSE", LegB: LegYes},
	{MarketA: "NOCHANGE", LegA: LegYes, MarketB: "CUTCUTCUT", LegB: LegYes},
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c, err := NewCatalog(defaultMarkets...)
	if err != nil {
		panic("invalid built-in market catalog: " + err.Error())
	}
	return c
}

// DefaultCombinations returns a copy of the compiled-in positions to monitor.
func DefaultCombinations() []Combination {
	out := make([]Combination, len(defaultCombinations))
	copy(out, defaultCombinations)
	return out
}
