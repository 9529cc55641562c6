package process

import (
	"github.com/pjazdzyk/hvac-engine-sub005/connector"
	"github.com/pjazdzyk/hvac-engine-sub005/fluids"
	"github.com/pjazdzyk/hvac-engine-sub005/flows"
	"github.com/pjazdzyk/hvac-engine-sub005/quantity"
)

// Mixing implements spec.md §4.5.4: SIMPLE_MIXING (two flows) and
// MULTIPLE_MIXING (N>=2 recirculation flows plus one inlet), both reduced
// to the same mass/energy weighted combination.
type Mixing struct {
	inlet          connector.Input[flows.FlowOfHumidAir]
	recirculations []connector.Input[flows.FlowOfHumidAir]
	outlet         connector.Output[flows.FlowOfHumidAir]
	state          connector.State
	mode           ProcessMode
}

// MixingOfSimple configures a Mixing block for exactly one recirculation stream.
func MixingOfSimple() *Mixing {
	return &Mixing{mode: ModeSimpleMixing, recirculations: make([]connector.Input[flows.FlowOfHumidAir], 1)}
}

// MixingOfMultiple configures a Mixing block for n recirculation streams (n >= 2).
func MixingOfMultiple(n int) *Mixing {
	if n < 2 {
		n = 2
	}
	return &Mixing{mode: ModeMultipleMixing, recirculations: make([]connector.Input[flows.FlowOfHumidAir], n)}
}

func (m *Mixing) InputConnector() *connector.Input[flows.FlowOfHumidAir]   { return &m.inlet }
func (m *Mixing) OutputConnector() *connector.Output[flows.FlowOfHumidAir] { return &m.outlet }
func (m *Mixing) ProcessType() ProcessType                                  { return TypeMixing }
func (m *Mixing) ProcessMode() ProcessMode                                  { return m.mode }

func (m *Mixing) ConnectAirFlowSource(source *connector.Output[flows.FlowOfHumidAir]) {
	m.inlet.ConnectAndConsumeDataFrom(source)
	m.state = connector.Ready
}

// ConnectRecirculationSource binds the i-th recirculation input to source.
func (m *Mixing) ConnectRecirculationSource(i int, source *connector.Output[flows.FlowOfHumidAir]) {
	m.recirculations[i].ConnectAndConsumeDataFrom(source)
}

func (m *Mixing) ResetProcess() {
	m.outlet = connector.Output[flows.FlowOfHumidAir]{}
	m.state = connector.Ready
}

// Validate checks that every connected stream shares the inlet's pressure
// within 1e-6 Pa.
func (m *Mixing) Validate() error {
	streams, err := m.gatherStreams()
	if err != nil {
		return wrapBlockError(TypeMixing, m.mode, err)
	}
	base := streams[0].HumidAir().Pressure()
	for _, s := range streams[1:] {
		if err := mustSamePressure(base, s.HumidAir().Pressure(), 1e-6); err != nil {
			return wrapBlockError(TypeMixing, m.mode, err)
		}
	}
	return nil
}

func (m *Mixing) gatherStreams() ([]flows.FlowOfHumidAir, error) {
	in, err := m.inlet.Get()
	if err != nil {
		return nil, err
	}
	streams := make([]flows.FlowOfHumidAir, 0, len(m.recirculations)+1)
	streams = append(streams, in)
	for i := range m.recirculations {
		r, rErr := m.recirculations[i].Get()
		if rErr != nil {
			return nil, rErr
		}
		streams = append(streams, r)
	}
	return streams, nil
}

// Run executes the mass/energy weighted mixing balance and publishes the
// outlet flow. heatOfProcess is always zero (spec.md §4.5.4).
func (m *Mixing) Run() (ProcessResult, error) {
	if err := m.Validate(); err != nil {
		return ProcessResult{}, err
	}
	streams, err := m.gatherStreams()
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeMixing, m.mode, err)
	}

	p := streams[0].HumidAir().Pressure()
	var gdaOut, xWeighted, iWeighted float64
	for _, s := range streams {
		gda := s.DryAirMassFlow().GetInKilogramPerSecond()
		x := s.HumidAir().HumidityRatio().GetInKilogramPerKilogram()
		i := s.HumidAir().SpecificEnthalpy().GetInKiloJoulePerKilogram()
		gdaOut += gda
		xWeighted += gda * x
		iWeighted += gda * i
	}
	xOut := xWeighted / gdaOut
	iOut := iWeighted / gdaOut
	tOutC, err := dryBulbTemperatureOf(iOut, xOut)
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeMixing, m.mode, err)
	}

	outAir, err := fluids.HumidAirOf(p, quantity.TemperatureOfCelsius(tOutC), quantity.HumidityRatioOfKilogramPerKilogram(xOut))
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeMixing, m.mode, err)
	}
	outFlow, err := flows.FlowOfHumidAirOfDryAirMassFlow(outAir, quantity.MassFlowOfKilogramPerSecond(gdaOut))
	if err != nil {
		return ProcessResult{}, wrapBlockError(TypeMixing, m.mode, err)
	}

	m.outlet.Set(outFlow)
	m.state = connector.LastRunValid
	return ProcessResult{
		ProcessType:        TypeMixing,
		ProcessMode:        m.mode,
		InletFlow:          streams[0],
		OutletFlow:         outFlow,
		HeatOfProcess:      quantity.PowerOfWatt(0),
		RecirculationFlows: streams[1:],
	}, nil
}
