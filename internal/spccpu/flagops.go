package spccpu

// Direct flag manipulation opcodes.

func (c *CPU) clrp() { c.setFlag(FlagP, false) }
func (c *CPU) setp() { c.setFlag(FlagP, true) }

func (c *CPU) clrc() { c.setFlag(FlagC, false) }
func (c *CPU) setc() { c.setFlag(FlagC, true) }
func (c *CPU) notc() { c.setFlag(FlagC, !c.getFlag(FlagC)) }

// clrv clears both V and H; this is a documented SPC700 quirk (CLRV
// affects H as well as V, unlike most other CPUs' "clear overflow" op).
func (c *CPU) clrv() {
	c.setFlag(FlagV, false)
	c.setFlag(FlagH, false)
}

func (c *CPU) ei() { c.setFlag(FlagI, true) }
func (c *CPU) di() { c.setFlag(FlagI, false) }
