package code

func minimalModel() *SourceModel {
	return &SourceModel{
		SourceFile: []*SourceFile{
			{URI: "com.acme/Empty.spl", CompilationUnit: &CompilationUnit{}},
		},
	}
}

func functorModel() *SourceModel {
	return &SourceModel{
		SourceFile: []*SourceFile{
			{
				URI: "com.acme/Main.spl",
				CompilationUnit: &CompilationUnit{
					SplNamespace: &SplNamespace{SourceLocation: SourceLocation{Line: 1, Column: 1}, Name: "com.acme"},
					Definitions: &Definitions{
						CompositeDefinition: []*CompositeDefinition{
							{
								ExtendedSourceLocation: ExtendedSourceLocation{StartLine: 3, StartColumn: 1, EndLine: 12, EndColumn: 1},
								CompositeHead: &CompositeHead{
									SourceLocation: SourceLocation{Line: 3, Column: 1},
									Name:           "Main",
									Inputs: &CompositeInputs{
										Iport: []*CompositePort{{SourceLocation: SourceLocation{Line: 3, Column: 20}, Index: 0, Name: "In1", Type: "tuple<int32 a>"}},
									},
								},
								CompositeBody: &CompositeBody{
									Graph: &CompositeGraph{
										OperatorInvocation: []*OperatorInvocation{
											{
												OperatorInvocationHead: &OperatorInvocationHead{
													SourceLocation: SourceLocation{Line: 5, Column: 5},
													OperatorName:   "Functor",
													Inputs: &OperatorInvocationInputs{
														Input: []*OperatorInvocationInput{{
															SourceLocation: SourceLocation{Line: 5, Column: 40},
															Istream:        []*OperatorInvocationInputStream{{SourceLocation: SourceLocation{Line: 5, Column: 40}, Name: "In1"}},
														}},
													},
													Outputs: &OperatorInvocationOutputs{
														Output: []*OperatorInvocationOutput{{
															SourceLocation: SourceLocation{Line: 5, Column: 13},
															StreamName:     "Out1",
															Type:           "tuple<int32 a>",
														}},
													},
												},
												OperatorInvocationBody: &OperatorInvocationBody{},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func expressions(values ...string) []*Expression {
	var ret []*Expression
	for _, value := range values {
		ret = append(ret, &Expression{Expr: value})
	}
	return ret
}

func maximalModel() *SourceModel {
	doc := func(text string) *SplDoc {
		return &SplDoc{
			Description: &SplDocDescription{Description: text},
			Annotation: []*SplDocAnnotation{
				{Name: "param", Target: "a", Description: "first"},
				{Name: "param", Target: "b", Description: "second"},
			},
		}
	}
	window := func(port string, windowType WindowType) *OperatorInvocationWindow {
		return &OperatorInvocationWindow{
			SourceLocation: SourceLocation{Line: 30, Column: 9},
			PortName:       port,
			WindowType:     Set(windowType),
			Partitioned:    Set(false),
			EvictionPolicy: &WindowPolicy{Kind: Set(WindowPolicyDelta), Attribute: "ts", Size: "10.0"},
			TriggerPolicy:  &WindowPolicy{Kind: Set(WindowPolicyCount), Size: "1"},
		}
	}
	return &SourceModel{
		SourceFile: []*SourceFile{
			{
				URI: "com.acme/namespace-info.spl",
				CompilationUnit: &CompilationUnit{
					SplDoc:       doc("Acme operators."),
					SplNamespace: &SplNamespace{Name: "com.acme"},
				},
			},
			{
				URI: "com.acme/Full.spl",
				CompilationUnit: &CompilationUnit{
					SplDoc:       doc("Full file."),
					SplNamespace: &SplNamespace{SourceLocation: SourceLocation{Line: 1, Column: 1}, SplDoc: doc("Namespace."), Name: "com.acme"},
					UseDirectives: &UseDirectives{UseDirective: []*UseDirective{
						{SourceLocation: SourceLocation{Line: 2, Column: 1}, NamespaceName: "spl.utility", Tail: "*"},
						{SourceLocation: SourceLocation{Line: 3, Column: 1}, NamespaceName: "spl.adapter", Tail: "FileSource"},
					}},
					Definitions: &Definitions{
						TypeDefinition: []*TypeDefinition{
							{Name: "Point", Value: "tuple<int32 x, int32 y>", SplDoc: doc("A point."), Modifiers: &TypeModifiers{Modifier: []*TypeModifier{{Name: Set(TypeModifierPublic)}, {Name: Set(TypeModifierStatic)}}}},
							{Name: "Id", Value: "rstring", ExtendedSourceLocation: ExtendedSourceLocation{StartLine: 5, StartColumn: 1, EndLine: 5, EndColumn: 20}},
						},
						FunctionDefinition: []*FunctionDefinition{
							{
								ExtendedSourceLocation: ExtendedSourceLocation{StartLine: 7, StartColumn: 1, EndLine: 9, EndColumn: 1},
								FunctionBody:           "{ return a + b; }",
								FunctionHead: &FunctionHead{
									SourceLocation: SourceLocation{Line: 7, Column: 1},
									SplDoc:         doc("Adds."),
									Name:           "add",
									ReturnType:     "int32",
									Modifiers:      &FunctionModifiers{Modifier: []*FunctionModifier{{Name: Set(FunctionModifierPublic)}, {Name: Set(FunctionModifierStateful)}}},
									Parameters: &FunctionParameters{Parameter: []*FunctionParameter{
										{Name: "a", Type: "int32", Modifiers: &FunctionParameterModifiers{Modifier: []*FunctionParameterModifier{{Name: Set(FunctionParameterModifierMutable)}, {}}}},
										{Name: "b", Type: "int32"},
									}},
								},
							},
							{FunctionHead: &FunctionHead{Name: "noop", ReturnType: "void"}},
						},
						CompositeDefinition: []*CompositeDefinition{
							{
								CompositeHead: &CompositeHead{
									SplDoc:    doc("Pipeline."),
									Name:      "Pipeline",
									Modifiers: &CompositeModifiers{Modifier: []*CompositeModifier{{Name: Set(CompositeModifierPublic)}, {}}},
									Inputs:    &CompositeInputs{Iport: []*CompositePort{{Index: 0, Name: "I1", Type: "Point"}, {Index: 1, Name: "I2"}}},
									Outputs:   &CompositeOutputs{Oport: []*CompositePort{{Index: 0, Name: "O1"}, {Index: 1, Name: "O2", Type: "Point"}}},
								},
								CompositeBody: &CompositeBody{
									Types: &CompositeTypes{Type: []*TypeDefinition{
										{Name: "Inner", Value: "int32", Modifiers: &TypeModifiers{Modifier: []*TypeModifier{{Name: Set(TypeModifierStatic)}}}},
										{Name: "Other", Value: "int64"},
									}},
									Parameters: &CompositeParameters{Parameter: []*CompositeParameter{
										{Name: "$file", DefaultValue: `"in.csv"`, ExpressionMode: &CompositeParameterExpressionMode{Mode: Set(ExpressionModeExpression), Type: "rstring"}},
										{Name: "$op", ExpressionMode: &CompositeParameterExpressionMode{Mode: Set(ExpressionModeOperator)}},
									}},
									Configs: &Configs{Config: []*Config{
										{Name: "placement", Option: []*ConfigOption{{Value: "host", Parameter: []*ConfigValueParameter{{Value: "a"}, {Value: "b"}}}, {Value: "partitionColocation"}}},
										{Name: "threadedPort", Option: []*ConfigOption{{Value: "queue"}}},
									}},
									Graph: &CompositeGraph{OperatorInvocation: []*OperatorInvocation{
										{
											OperatorInvocationHead: &OperatorInvocationHead{
												SplDoc:          doc("Aggregates."),
												OperatorName:    "Aggregate",
												InvocationAlias: "Agg",
												Outputs: &OperatorInvocationOutputs{Output: []*OperatorInvocationOutput{
													{Index: 0, StreamName: "S1", Type: "Point", Alias: "A1"},
													{Index: 1, StreamName: "S2", Type: "Point"},
												}},
												Inputs: &OperatorInvocationInputs{Input: []*OperatorInvocationInput{
													{Index: 0, Alias: "In", Istream: []*OperatorInvocationInputStream{{Name: "I1"}, {Name: "I2"}}},
													{Index: 1, Istream: []*OperatorInvocationInputStream{{Name: "Ctl"}, {}}},
												}},
											},
											OperatorInvocationBody: &OperatorInvocationBody{
												Logic: &OperatorInvocationLogic{
													HasState:  Set(true),
													OnProcess: &OnProcess{SourceLocation: SourceLocation{Line: 20, Column: 9}},
													OnTuple:   []*OnTuple{{PortName: "I1"}, {PortName: "Ctl"}},
													OnPunct:   []*OnPunct{{PortName: "I1"}, {PortName: "Ctl"}},
												},
												Windows: &OperatorInvocationWindows{Window: []*OperatorInvocationWindow{
													window("I1", WindowTypeSliding),
													window("Ctl", WindowTypeTumbling),
												}},
												Parameters: &OperatorInvocationParameters{Parameter: []*OperatorInvocationParameter{
													{Name: "groupBy", Value: expressions("x", "y")},
													{Name: "partitionBy", Value: expressions("x")},
												}},
												OutputAssignments: &OperatorInvocationOutputAssignments{OutputAssignment: []*OperatorInvocationOutputAssignment{
													{PortName: "S1", AttributeAssignment: []*OperatorInvocationAttributeAssignment{
														{Name: "x", OutputFunction: "Max", Value: expressions("x")},
														{Name: "y", Value: expressions("y", "1")},
													}},
													{PortName: "S2", AttributeAssignment: []*OperatorInvocationAttributeAssignment{{Name: "x", Value: expressions("0")}}},
												}},
												Configs: &Configs{Config: []*Config{{Name: "placement", Option: []*ConfigOption{{Value: "host"}}}}},
											},
										},
										{
											OperatorInvocationHead: &OperatorInvocationHead{OperatorName: "Custom"},
											OperatorInvocationBody: &OperatorInvocationBody{Logic: &OperatorInvocationLogic{HasState: Set(false)}},
										},
									}},
								},
							},
						},
					},
				},
			},
		},
	}
}
